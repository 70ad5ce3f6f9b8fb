// Package viz renders entropy model output in the terminal.
//
// Two modes are provided:
//
//   - [Plot]: the static two-panel chart of a finished run — entropy,
//     static exp(D) and recognition on top, the three raw drivers below
//   - [NewLive]: a Bubble Tea view that replays the integration step by
//     step while the traces grow
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Restart from the first sample
//	Q     - Quit
package viz
