package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/imageio"
)

// =============================================================================
// TIME COMMAND - doubling benchmark
// =============================================================================

func (a *app) timeCmd() *cobra.Command {
	var engineName string
	cmd := &cobra.Command{
		Use:   "time <bound> <input>",
		Short: "Time 1, 2, 4, ... <bound> passes and print the scaling ratios",
		Long: `Runs the averaging engine on <input> for 1, 2, 4, ... passes up to
<bound>, restarting from the original image at every scale. Each line
reads "<passes> : <ratio to previous scale> : <cumulative seconds>".`,
		Args: exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTime(args, engineName)
		},
	}
	cmd.Flags().StringVar(&engineName, "engine", engineSequential, "engine: sequential or parallel")
	return cmd
}

func (a *app) runTime(args []string, engineName string) error {
	bound, err := parseBound(args[0])
	if err != nil {
		return err
	}

	engine, cleanup, err := a.engine(engineName)
	if err != nil {
		return err
	}
	defer cleanup()

	original, err := imageio.Load(args[1])
	if err != nil {
		return err
	}

	seq, err := smooth.NewHarness(engine, smooth.WithLogger(a.log)).Runs(original, bound)
	if err != nil {
		return err
	}

	a.log.Debug("timing",
		slog.String("engine", engineName),
		slog.Int("bound", bound),
		slog.Int("rows", original.Rows()),
		slog.Int("cols", original.Cols()))

	return a.printer().Runs(seq)
}
