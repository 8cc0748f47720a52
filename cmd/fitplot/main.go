// Command fitplot renders the fitness progression chart of a GA or NEAT
// run from the progression log the solver wrote.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bensuk23/Optimisation/internal/chart"
	"github.com/bensuk23/Optimisation/internal/config"
	"github.com/bensuk23/Optimisation/internal/export"
	"github.com/bensuk23/Optimisation/internal/fitlog"
	"github.com/bensuk23/Optimisation/internal/logx"
	"github.com/bensuk23/Optimisation/internal/paths"
	"github.com/bensuk23/Optimisation/internal/solver"
)

// Exit codes, one per failure class.
const (
	exitOK = iota
	exitUsage
	exitNotFound
	exitEmpty
	exitLoad
	exitRender
	exitExport
)

type options struct {
	configPath string
	baseDir    string
	input      string
	output     string
	xlsx       string
	preview    int
	widthIn    float64
	heightIn   float64
	logLevel   string
}

// exportError marks a failure of the optional workbook export.
type exportError struct{ err error }

func (e *exportError) Error() string { return "export series: " + e.err.Error() }
func (e *exportError) Unwrap() error { return e.err }

// missingLogError adds the solver that should have written the log.
type missingLogError struct {
	variant solver.Variant
	err     error
}

func (e *missingLogError) Error() string { return e.err.Error() }
func (e *missingLogError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// report prints err, followed by a hint when the log was missing.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var ml *missingLogError
	var nf *fitlog.NotFoundError
	if errors.As(err, &ml) && errors.As(err, &nf) {
		fmt.Fprintf(w, "hint: run the %s solver first so it writes %s\n", solverName(ml.variant), nf.Path)
	}
}

func newRootCmd() *cobra.Command {
	var o options
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "fitplot [ga|neat]",
		Short: "Plot best and average fitness per generation of a solver run",
		Long: `fitplot reads the progression log written by the classic GA or the
simplified NEAT solver, repairs its generation column and saves a
log-scale fitness chart next to the executable.

Without a valid solver argument the solver is asked for on stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "TOML settings file")
	f.StringVar(&o.baseDir, "base-dir", "", "installation directory paths are resolved from (default: executable directory)")
	f.StringVar(&o.input, "input", "", "progression log to read instead of the resolved one")
	f.StringVarP(&o.output, "output", "o", "", "chart file to write instead of the resolved one")
	f.StringVar(&o.xlsx, "xlsx", "", "also export the repaired series to this workbook")
	f.IntVar(&o.preview, "preview", def.PreviewRows, "rows of the repaired series to print (0 disables)")
	f.Float64Var(&o.widthIn, "width", def.Chart.WidthIn, "chart width in inches")
	f.Float64Var(&o.heightIn, "height", def.Chart.HeightIn, "chart height in inches")
	f.StringVar(&o.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	return cmd
}

// settings merges the config file with the flags the user actually set.
func settings(cmd *cobra.Command, o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	f := cmd.Flags()
	if f.Changed("base-dir") {
		cfg.BaseDir = o.baseDir
	}
	if f.Changed("preview") {
		cfg.PreviewRows = o.preview
	}
	if f.Changed("width") {
		cfg.Chart.WidthIn = o.widthIn
	}
	if f.Changed("height") {
		cfg.Chart.HeightIn = o.heightIn
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

func selectVariant(cmd *cobra.Command, args []string) (solver.Variant, error) {
	if len(args) == 1 {
		v, err := solver.Parse(args[0])
		if err == nil {
			return v, nil
		}
		logx.Warnf("%v", err)
	}
	return solver.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
}

func run(cmd *cobra.Command, args []string, o options) error {
	cfg, err := settings(cmd, o)
	if err != nil {
		return err
	}
	logx.SetLevel(cfg.LogLevel)
	out := cmd.OutOrStdout()

	variant, err := selectVariant(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "--- Visualizing results for %s ---\n", variant.Label())

	baseDir := cfg.BaseDir
	if baseDir == "" {
		if baseDir, err = paths.InstallDir(); err != nil {
			return err
		}
	}
	p := paths.Resolve(variant, baseDir)
	if o.input != "" {
		p.Input = o.input
	}
	if o.output != "" {
		p.Output = o.output
	}
	logx.Debugf("input %s, output %s", p.Input, p.Output)

	series, st, err := fitlog.Load(p.Input)
	if err != nil {
		var nf *fitlog.NotFoundError
		if errors.As(err, &nf) {
			return &missingLogError{variant: variant, err: err}
		}
		return err
	}
	logx.Infof("loaded %d generations from %s (%d raw rows, %d incomplete, %d non-numeric dropped)",
		st.Kept, p.Input, st.Raw, st.DroppedMissing, st.DroppedInvalid)

	if cfg.PreviewRows > 0 {
		fmt.Fprintf(out, "\nLast %d generations (repaired index):\n", len(series.Tail(cfg.PreviewRows)))
		if err := fitlog.WritePreview(out, series, cfg.PreviewRows); err != nil {
			return err
		}
	}

	art, err := chart.Render(series, p.Output, p.TitleSuffix, chart.Options{
		WidthIn:  cfg.Chart.WidthIn,
		HeightIn: cfg.Chart.HeightIn,
	})
	if err != nil {
		return err
	}
	if art.Clamped > 0 {
		logx.Warnf("%d fitness values <= 0 drawn at %g on the log axis", art.Clamped, chart.LogFloor)
	}
	fmt.Fprintf(out, "\nChart saved: %s\n", art.Path)

	if o.xlsx != "" {
		if err := export.WriteXLSX(series, o.xlsx); err != nil {
			return &exportError{err: err}
		}
		fmt.Fprintf(out, "Series exported: %s\n", o.xlsx)
	}
	return nil
}

func solverName(v solver.Variant) string {
	if v == solver.NEAT {
		return "NEAT (NeatXorSolver)"
	}
	return "classic GA (Main)"
}

func exitCode(err error) int {
	var (
		nf  *fitlog.NotFoundError
		ed  *fitlog.EmptyDatasetError
		le  *fitlog.LoadError
		re  *chart.RenderError
		exp *exportError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &nf):
		return exitNotFound
	case errors.As(err, &ed):
		return exitEmpty
	case errors.As(err, &le):
		return exitLoad
	case errors.As(err, &re):
		return exitRender
	case errors.As(err, &exp):
		return exitExport
	}
	return exitUsage
}
