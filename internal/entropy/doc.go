// Package entropy provides the numeric core of the cultural entropy model.
//
// The model is a forced, self-reinforcing relaxation process: three
// exogenous decade-level drivers (stability, extraction, volatility) are
// combined into a forcing term D(t), and the entropy state E(t) is advanced
// with fixed-step forward Euler:
//
//	E_inst = exp(D)
//	dE/dt  = gamma*E + lambda*(E_inst - E)
//
// A stateless transform maps entropy to a bounded recognition value
// R = Rmax*exp(-k*E).
//
//   - [Signal]: one driver sampled at decade granularity
//   - [Grid]: uniform time grid with clamped decade lookup
//   - [Forcing]: element-wise driver combination
//   - [Integrate]: the forward Euler loop
//   - [Model]: glues the stages into one Run
//
// # Example
//
//	m := entropy.NewModel()
//	res, _ := m.Run()
//	fmt.Println(res.Entropy[len(res.Entropy)-1])
//
// # Numeric Behavior
//
// exp(D) is never clamped. Under sustained positive forcing the state grows
// without bound and can overflow to +Inf; the model surfaces this as an
// error rather than saturating. The integrator is deliberately plain
// forward Euler with a fixed dt.
package entropy
