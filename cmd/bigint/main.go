// Command bigint is a calculator and converter for arbitrary-precision
// integers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"golang.org/x/term"
)

// Error is the class of command line errors.
var Error = errs.Class("bigint")

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	colorMode  string
	verbose    bool

	cfg config
	log *slog.Logger

	errColor *color.Color
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		errColor: color.New(color.FgRed, color.Bold),
	}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigint",
		Short:         "Arbitrary-precision integer calculator",
		Long:          `bigint evaluates and converts integers of any size in radix 2 through 36.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		a.evalCmd(),
		a.convertCmd(),
		a.infoCmd(),
		a.sqrtCmd(),
		a.versionCmd(),
	)

	return root
}

// setup loads the config file and applies the global flags on top of it.
func (a *app) setup() (err error) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	a.cfg = defaultConfig()
	if a.configPath != "" {
		a.cfg, err = loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.log.Debug("loaded config", "path", a.configPath, "radix", a.cfg.Output.Radix, "color", a.cfg.Output.Color)
	}

	mode := a.cfg.Output.Color
	if a.colorMode != "" {
		mode = a.colorMode
	}

	enabled, err := colorEnabled(mode, a.stdout)
	if err != nil {
		return err
	}
	if enabled {
		a.errColor.EnableColor()
	} else {
		a.errColor.DisableColor()
	}

	return nil
}

// colorEnabled resolves a color mode against the output writer.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	}

	return false, Error.New("unsupported color mode %q (must be auto, on or off)", mode)
}

func (a *app) printError(err error) {
	a.errColor.Fprint(a.stderr, "error:")
	fmt.Fprintf(a.stderr, " %v\n", err)
}

func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)

	cmd := a.command()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		a.printError(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
