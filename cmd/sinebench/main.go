package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sinebench/internal/bench"
	"github.com/san-kum/sinebench/internal/config"
	"github.com/san-kum/sinebench/internal/cputime"
	"github.com/san-kum/sinebench/internal/fpcheck"
	"github.com/san-kum/sinebench/internal/hwtrig"
	"github.com/san-kum/sinebench/internal/lut"
	"github.com/san-kum/sinebench/internal/report"
	"github.com/san-kum/sinebench/internal/strategy"
	"github.com/san-kum/sinebench/internal/tui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runOptions are the suite flags. Each command that runs the suite owns
// its own copy.
type runOptions struct {
	repeat  int
	pretty  bool
	csvPath string
	fpCheck bool
	clock   string
}

type app struct {
	verbosity    string
	configFile   string
	preset       string
	libraryInput string
	lerp         string
	precision    int

	root       runOptions
	run        runOptions
	live       runOptions
	checkFP    bool
	plotHeight int

	// reference is the sine the diagnostic pass evaluates.
	reference func(rad float64) float64
}

// main runs the sinebench command tree. Invoked without a subcommand it
// runs the fixed benchmark suite; it exits 1 if the command fails.
func main() {
	if err := newApp().command().Execute(); err != nil {
		os.Exit(1)
	}
}

func newApp() *app {
	return &app{reference: math.Sin}
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "sinebench",
		Short:             "sine lookup table vs fsin vs math.Sin micro benchmark",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuite(cmd, &a.root)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.verbosity, "verbosity", "info", "logging verbosity - choose from [info, debug, trace]")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&a.preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&a.libraryInput, "library-input", "radians", "how libm reads the angle: radians (unconverted) or degrees")
	rootCmd.PersistentFlags().StringVar(&a.lerp, "lerp", "precise", "lerp formula for table-lerp: precise or imprecise")
	rootCmd.PersistentFlags().IntVar(&a.precision, "precision", config.DefaultPrecision, "decimals printed")
	addRunFlags(rootCmd, &a.root)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the benchmark suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuite(cmd, &a.run)
		},
	}
	addRunFlags(runCmd, &a.run)

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the generated sine table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), report.FormatTable(lut.Default, a.precision))
			return err
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "reference pass over 0..89 degrees with floating point checking",
		Args:  cobra.NoArgs,
		RunE:  a.checkReference,
	}
	checkCmd.Flags().BoolVar(&a.checkFP, "fp-check", true, "fail on NaN or infinite reference values")

	plotCmd := &cobra.Command{
		Use:   "plot [strategy]",
		Short: "plot a strategy's output and error over 0..89 degrees",
		Args:  cobra.ExactArgs(1),
		RunE:  a.plotStrategy,
	}
	plotCmd.Flags().IntVar(&a.plotHeight, "height", 10, "plot height")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare every strategy's accuracy against math.Sin in degrees",
		Args:  cobra.NoArgs,
		RunE:  a.compareStrategies,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the suite with a live terminal view, repeat times",
		Args:  cobra.NoArgs,
		RunE:  a.runLive,
	}
	liveCmd.Flags().IntVar(&a.live.repeat, "repeat", 1, "run the suite this many times")
	liveCmd.Flags().StringVar(&a.live.clock, "clock", "cpu", "clock: cpu or wall")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-8s %d trials, repeat %d, library input %s\n", name, len(p.Trials), p.Repeat, p.LibraryInput)
			}
			return nil
		},
	}

	strategiesCmd := &cobra.Command{
		Use:   "strategies",
		Short: "list registered strategies",
		Args:  cobra.NoArgs,
		RunE:  a.listStrategies,
	}

	rootCmd.AddCommand(runCmd, tableCmd, checkCmd, plotCmd, compareCmd, liveCmd, presetsCmd, strategiesCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "run the suite this many times")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "print a summary table after the suite")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "write results as CSV to this path (- for stdout)")
	cmd.Flags().BoolVar(&opts.fpCheck, "fp-check", false, "run the reference pass with floating point checking first")
	cmd.Flags().StringVar(&opts.clock, "clock", "cpu", "clock: cpu or wall")
}

func (a *app) setupLogging(cmd *cobra.Command, args []string) error {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stderr)

	switch a.verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.WithFields(log.Fields{
		"fsin_native": hwtrig.Native,
		"cpu_clock":   cputime.Supported,
	}).Debug("platform")
	return nil
}

// loadConfig applies, in increasing priority: defaults, preset, config
// file, explicitly set flags. opts may be nil for commands without suite
// flags.
func (a *app) loadConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if a.preset != "" {
		p := config.GetPreset(a.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
		cfg = p
	}

	if a.configFile != "" {
		c, err := config.Load(a.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
		log.Debugf("using config file %s", a.configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("library-input") {
		cfg.LibraryInput = a.libraryInput
	}
	if flags.Changed("lerp") {
		cfg.Lerp = a.lerp
	}
	if opts != nil {
		if flags.Changed("repeat") {
			cfg.Repeat = opts.repeat
		}
		if flags.Changed("fp-check") {
			cfg.FPCheck = opts.fpCheck
		}
		if flags.Changed("clock") {
			cfg.Clock = opts.clock
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newHarness(cfg *config.Config) (*bench.Harness, error) {
	opts, err := cfg.StrategyOptions()
	if err != nil {
		return nil, err
	}
	return bench.FromConfig(cfg, strategy.NewRegistry(opts), nil)
}

func (a *app) runSuite(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := a.loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cfg.FPCheck {
		if err := lut.Reference(out, a.reference, fpcheck.On); err != nil {
			return err
		}
	}

	h, err := newHarness(cfg)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(out, cfg.Precision)
	var printErr error
	runs := h.RunRepeated(cfg.Repeat, func(run int, r bench.Result) {
		if err := printer.Result(r); err != nil && printErr == nil {
			printErr = err
		}
	})
	if printErr != nil {
		return printErr
	}

	if opts.pretty || cfg.Repeat > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.RenderTable(report.Summarize(runs), cfg.Precision))
	}

	if opts.csvPath != "" {
		return writeCSV(out, opts.csvPath, runs)
	}
	return nil
}

func writeCSV(out io.Writer, path string, runs [][]bench.Result) error {
	if path == "-" {
		return report.WriteCSV(out, runs)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.WriteCSV(f, runs); err != nil {
		return err
	}
	log.Infof("results written to %s", path)
	return nil
}

func (a *app) checkReference(cmd *cobra.Command, args []string) error {
	mode := fpcheck.Off
	if a.checkFP {
		mode = fpcheck.On
	}
	return lut.Reference(cmd.OutOrStdout(), a.reference, mode)
}

func (a *app) registry(cmd *cobra.Command) (*strategy.Registry, error) {
	cfg, err := a.loadConfig(cmd, nil)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.StrategyOptions()
	if err != nil {
		return nil, err
	}
	return strategy.NewRegistry(opts), nil
}

func (a *app) plotStrategy(cmd *cobra.Command, args []string) error {
	reg, err := a.registry(cmd)
	if err != nil {
		return err
	}
	s, err := reg.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, reg.Names())
	}
	ref := strategy.NewLibrary(strategy.InputDegrees)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.PlotStrategy(s, a.plotHeight))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.PlotError(s, ref, a.plotHeight))
	return nil
}

func (a *app) compareStrategies(cmd *cobra.Command, args []string) error {
	reg, err := a.registry(cmd)
	if err != nil {
		return err
	}
	ref := strategy.NewLibrary(strategy.InputDegrees)

	rows := make([]report.Accuracy, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		s, err := reg.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, report.Measure(s, ref))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "accuracy over %d..%d degrees against math.Sin(deg*pi/180)\n\n", bench.MinDegree, bench.MaxDegree)
	return report.WriteAccuracy(out, rows)
}

func (a *app) runLive(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd, &a.live)
	if err != nil {
		return err
	}
	h, err := newHarness(cfg)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.NewModel(h, cfg.Repeat, cfg.Precision)).Run()
	if err != nil {
		return err
	}

	m, ok := final.(tui.Model)
	if !ok || !m.Done() {
		return nil
	}
	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out, cfg.Precision)
	for _, r := range m.Results() {
		if err := printer.Result(r); err != nil {
			return err
		}
	}
	if runs := m.Runs(); len(runs) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.RenderTable(report.Summarize(runs), cfg.Precision))
	}
	return nil
}

func (a *app) listStrategies(cmd *cobra.Command, args []string) error {
	reg, err := a.registry(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tSINE(45)")
	for _, name := range reg.Names() {
		s, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.6f\n", s.Name(), s.Label(), s.Sine(45))
	}
	return w.Flush()
}
