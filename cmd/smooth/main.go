// Command smooth applies repeated 3x3 box blurs to images and times how
// the work scales.
//
// Usage:
//
//	smooth average <passes> <input> <output> [--engine parallel] [--checkpoint]
//	smooth time <bound> <input> [--engine parallel] [--workers 10]
//	smooth compare <image-a> <image-b>
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/config"
	"github.com/gogpu/smooth/internal/imageio"
	"github.com/gogpu/smooth/internal/parallel"
	"github.com/gogpu/smooth/internal/report"
)

// Engine names accepted by --engine.
const (
	engineSequential = "sequential"
	engineParallel   = "parallel"
)

// app holds the settings shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	workers    int
	executor   string
	locale     string

	cfg *config.Config
	log *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if isUsageError(err) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

// isUsageError reports whether err should be followed by the usage text.
func isUsageError(err error) bool {
	return errors.Is(err, smooth.ErrUsage) ||
		errors.Is(err, smooth.ErrInvalidBound) ||
		errors.Is(err, imageio.ErrLoad)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smooth",
		Short:         "Repeated 3x3 neighbourhood averaging of images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q for %q", smooth.ErrUsage, args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("%w: a command is required", smooth.ErrUsage)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", smooth.ErrUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.IntVar(&a.workers, "workers", 0, "parallel engine worker count (overrides config)")
	pf.StringVar(&a.executor, "executor", "", "parallel task executor: scoped or pool (overrides config)")
	pf.StringVar(&a.locale, "locale", "en", "BCP 47 language tag used to format numbers")

	root.AddCommand(a.averageCmd())
	root.AddCommand(a.timeCmd())
	root.AddCommand(a.compareCmd())
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// logger. It runs before every subcommand and before any image is read.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("%w: %w", smooth.ErrUsage, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("executor") {
		cfg.Executor = a.executor
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", smooth.ErrUsage, err)
	}
	if _, err := language.Parse(a.locale); err != nil {
		return fmt.Errorf("%w: --locale %q: %w", smooth.ErrUsage, a.locale, err)
	}

	level, _ := cfg.LogLevel() // validated above
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(a.stderr, opts)
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(a.stderr, opts)
	}
	a.log = slog.New(h)
	smooth.SetLogger(a.log)

	a.cfg = cfg
	return nil
}

// engine builds the named engine. The returned cleanup releases a
// persistent worker pool, if one was created.
func (a *app) engine(name string) (smooth.Engine, func(), error) {
	switch name {
	case engineSequential:
		return smooth.Sequential{}, func() {}, nil
	case engineParallel:
		if a.cfg.Executor == config.ExecutorPool {
			pool := parallel.NewWorkerPool(a.cfg.Workers)
			e := smooth.NewParallel(smooth.WithWorkers(a.cfg.Workers), smooth.WithExecutor(pool))
			return e, pool.Close, nil
		}
		return smooth.NewParallel(smooth.WithWorkers(a.cfg.Workers)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown engine %q (want %s or %s)",
			smooth.ErrUsage, name, engineSequential, engineParallel)
	}
}

func (a *app) printer() *report.Printer {
	// Parsed in setup.
	return report.New(a.stdout, language.Make(a.locale))
}

// parseBound parses a positive pass count.
func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: pass count %q is not an integer", smooth.ErrUsage, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", smooth.ErrInvalidBound, n)
	}
	return n, nil
}

// exactArgs is cobra.ExactArgs with an error that wraps smooth.ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: accepts %d arg(s), received %d", smooth.ErrUsage, n, len(args))
		}
		return nil
	}
}
