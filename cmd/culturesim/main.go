package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/culturesim/culturesim/internal/config"
	"github.com/culturesim/culturesim/internal/entropy"
	"github.com/culturesim/culturesim/internal/report"
	"github.com/culturesim/culturesim/internal/storage"
	"github.com/culturesim/culturesim/internal/viz"
)

var (
	dataDir    string
	samples    int
	configFile string
	preset     string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "culturesim",
		Short: "cultural entropy dynamics model",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".culturesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the model and save the series",
		RunE:  runModel,
	}
	runCmd.Flags().IntVar(&samples, "samples", entropy.DefaultSamples, "grid sample count")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "decade summary table for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  reportRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay the integration in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&samples, "samples", entropy.DefaultSamples, "grid sample count")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, reportCmd, listCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildModel resolves preset, config file and flags into a runnable model.
// CLI flags win over the file, the file wins over the preset.
func buildModel(cmd *cobra.Command) (*entropy.Model, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}

	return cfg.Model(), nil
}

func runModel(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	fmt.Println("running entropy model...")
	start := time.Now()

	res, err := m.Run()
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("samples: %d (dt=%.4f)\n", res.Grid.Len(), res.Grid.Dt)

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(m, res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Println("\nsummary:")
	for name, val := range res.Summary() {
		fmt.Printf("  %s: %.4f\n", name, val)
	}
	fmt.Println()

	return report.Table(os.Stdout, res, entropy.DecadeLabels(m.BaseYear, m.Drivers.Decades()))
}

// loadResult rebuilds a Result from a saved run. The grid is deterministic
// given (decades, samples), so it is reconstructed rather than stored.
func loadResult(st *storage.Store, runID string) (*entropy.Result, *storage.RunMetadata, error) {
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(series.Times) == 0 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}

	g, err := entropy.NewGrid(meta.Decades, meta.Samples)
	if err != nil {
		return nil, nil, err
	}

	res := &entropy.Result{
		Grid:        g,
		Years:       series.Years,
		Forcing:     series.Forcing,
		Entropy:     series.Entropy,
		Recognition: series.Recognition,
	}
	return res, meta, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, meta, err := loadResult(st, args[0])
	if err != nil {
		return err
	}

	drivers := entropy.Drivers{
		Stability:  meta.Drivers.Stability,
		Extraction: meta.Drivers.Extraction,
		Volatility: meta.Drivers.Volatility,
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", meta.Samples)

	return viz.Plot(os.Stdout, res, drivers)
}

func reportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, meta, err := loadResult(st, args[0])
	if err != nil {
		return err
	}

	return report.Table(os.Stdout, res, entropy.DecadeLabels(meta.BaseYear, meta.Decades))
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSAMPLES\tDT\tFINAL E\tFINAL R")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Dt,
			run.Summary["final_entropy"],
			run.Summary["final_recognition"],
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "year", "forcing", "entropy", "recognition"}); err != nil {
		return err
	}

	for i := range series.Times {
		row := []string{
			strconv.FormatFloat(series.Times[i], 'f', 6, 64),
			strconv.FormatFloat(series.Years[i], 'f', 1, 64),
			strconv.FormatFloat(series.Forcing[i], 'f', 6, 64),
			strconv.FormatFloat(series.Entropy[i], 'f', 6, 64),
			strconv.FormatFloat(series.Recognition[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, series)
}

func runLive(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	res, err := m.Run()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLive(res))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
