package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/piquad/internal/config"
	"github.com/san-kum/piquad/internal/quad"
	"github.com/san-kum/piquad/internal/storage"
	"github.com/san-kum/piquad/internal/sweep"
	"github.com/san-kum/piquad/internal/tui"
)

var (
	dataDir   string
	rule      string
	integrand string
	// Single estimate parameters
	steps   int64
	workers int
	// Sweep matrix
	stepsList  []int64
	minWorkers int
	maxWorkers int
	outPath    string
	// Config file and preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "piquad",
		Short: "parallel midpoint-rule pi estimator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".piquad", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a single estimate",
		RunE:  runEstimate,
	}
	runCmd.Flags().Int64Var(&steps, "steps", 1000000, "integration steps")
	runCmd.Flags().IntVar(&workers, "workers", 4, "concurrent workers")
	runCmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "quadrature rule")
	runCmd.Flags().StringVar(&integrand, "integrand", config.DefaultIntegrand, "named integrand")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the full case matrix and write a CSV report",
		RunE:  runSweep,
	}
	addSweepFlags(sweepCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the sweep with a live progress view",
		RunE:  runLive,
	}
	addSweepFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot timing curves for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sweep presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s rule=%s integrand=%s steps=%v workers=%d..%d\n",
					name, p.Rule, p.Integrand, p.Steps, p.MinWorkers, p.MaxWorkers)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "quadrature rule")
	cmd.Flags().StringVar(&integrand, "integrand", config.DefaultIntegrand, "named integrand")
	cmd.Flags().Int64SliceVar(&stepsList, "steps", nil, "step counts to sweep")
	cmd.Flags().IntVar(&minWorkers, "min-workers", config.DefaultMinWorkers, "smallest worker count")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", config.DefaultMaxWorkers, "largest worker count")
	cmd.Flags().StringVar(&outPath, "out", "", "CSV output path")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// sweepConfig resolves preset, config file, and flags in that order of
// increasing precedence.
func sweepConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rule") {
		cfg.Rule = rule
	}
	if cmd.Flags().Changed("integrand") {
		cfg.Integrand = integrand
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = stepsList
	}
	if cmd.Flags().Changed("min-workers") {
		cfg.MinWorkers = minWorkers
	}
	if cmd.Flags().Changed("max-workers") {
		cfg.MaxWorkers = maxWorkers
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = outPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	// Interactive mode when neither parameter is given on the command
	// line, like the original console tool (but validated).
	if !cmd.Flags().Changed("steps") && !cmd.Flags().Changed("workers") {
		fmt.Print("number of workers: ")
		if _, err := fmt.Fscan(os.Stdin, &workers); err != nil {
			return fmt.Errorf("read worker count: %w", err)
		}
		fmt.Print("number of steps: ")
		if _, err := fmt.Fscan(os.Stdin, &steps); err != nil {
			return fmt.Errorf("read step count: %w", err)
		}
	}

	r, err := quad.GetRule(rule)
	if err != nil {
		return err
	}
	f, err := quad.GetIntegrand(integrand)
	if err != nil {
		return err
	}

	est := quad.NewEstimator(r, f, 0, 1)

	start := time.Now()
	res, err := est.Run(context.Background(), steps, workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%s ~= %.15f\n", integrand, res.Estimate)
	if exact, ok := quad.ExactValue(integrand); ok {
		fmt.Printf("|error|: %.3e\n", math.Abs(res.Estimate-exact))
	}
	fmt.Printf("elapsed: %.6f s\n", elapsed.Seconds())
	if dropped := res.Plan.Dropped(); dropped > 0 {
		fmt.Printf("note: %d trailing steps dropped by the %d-way partition\n", dropped, workers)
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return err
	}

	r, err := quad.GetRule(cfg.Rule)
	if err != nil {
		return err
	}
	f, err := quad.GetIntegrand(cfg.Integrand)
	if err != nil {
		return err
	}

	// Open the report before any computation; an unwritable output path
	// aborts the whole run.
	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output %s: %w", cfg.Output, err)
	}
	defer out.Close()

	cases := sweep.Cases(cfg.Steps, cfg.MinWorkers, cfg.MaxWorkers)
	runner := sweep.New(r, f)
	runner.SetObserver(func(done, total int, rec sweep.Record) {
		fmt.Printf("[%d/%d] steps=%d workers=%d estimate=%.12f time=%.6fs\n",
			done, total, rec.Steps, rec.Workers, rec.Estimate, rec.Elapsed.Seconds())
	})

	fmt.Printf("sweeping %d cases (%s rule)...\n", len(cases), cfg.Rule)
	records, err := runner.Run(context.Background(), cases)
	if err != nil {
		return err
	}

	if err := sweep.WriteCSV(out, records); err != nil {
		return err
	}

	return storeRun(cfg, records)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := sweepConfig(cmd)
	if err != nil {
		return err
	}

	r, err := quad.GetRule(cfg.Rule)
	if err != nil {
		return err
	}
	f, err := quad.GetIntegrand(cfg.Integrand)
	if err != nil {
		return err
	}
	exact, _ := quad.ExactValue(cfg.Integrand)

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output %s: %w", cfg.Output, err)
	}
	defer out.Close()

	cases := sweep.Cases(cfg.Steps, cfg.MinWorkers, cfg.MaxWorkers)
	runner := sweep.New(r, f)

	m := tui.NewModel(runner, cases, exact)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}

	fm := final.(tui.Model)
	if err := fm.Err(); err != nil {
		return err
	}
	records := fm.Records()
	if len(records) == 0 {
		return fmt.Errorf("sweep aborted before any case completed")
	}

	if err := sweep.WriteCSV(out, records); err != nil {
		return err
	}

	return storeRun(cfg, records)
}

func storeRun(cfg *config.Config, records []sweep.Record) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(cfg, records)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("wrote %s (%d rows)\n", cfg.Output, len(records))
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tRULE\tINTEGRAND\tCASES\tWORKERS\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d..%d\t%v\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rule,
			run.Integrand,
			run.Cases,
			run.MinWorkers,
			run.MaxWorkers,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadRecords(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("rule: %s\n", meta.Rule)
	fmt.Printf("integrand: %s\n\n", meta.Integrand)

	exact, haveExact := quad.ExactValue(meta.Integrand)

	bySteps := sweep.GroupBySteps(records)
	stepCounts := make([]int64, 0, len(bySteps))
	for n := range bySteps {
		stepCounts = append(stepCounts, n)
	}
	sort.Slice(stepCounts, func(i, j int) bool { return stepCounts[i] < stepCounts[j] })

	for _, n := range stepCounts {
		series := bySteps[n]
		times := sweep.Times(series)

		graph := asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("time (s) vs workers, %d steps", n)),
		)
		fmt.Println(graph)
		fmt.Println()

		if speedup := sweep.Speedup(times); len(series) > 1 && speedup != nil {
			graph = asciigraph.Plot(speedup,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("speedup vs workers, %d steps", n)),
			)
			fmt.Println(graph)
			fmt.Println()
		}

		if haveExact {
			graph = asciigraph.Plot(sweep.Errors(series, exact),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("|error| vs workers, %d steps", n)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	records, err := st.LoadRecords(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, records)
}
