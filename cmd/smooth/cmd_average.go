package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/checkpoint"
	"github.com/gogpu/smooth/internal/imageio"
)

// =============================================================================
// AVERAGE COMMAND - smooth an image and save the result
// =============================================================================

type averageFlags struct {
	engine          string
	checkpoint      bool
	checkpointEvery int
	checkpointDir   string
}

func (a *app) averageCmd() *cobra.Command {
	var f averageFlags
	cmd := &cobra.Command{
		Use:   "average <passes> <input> <output>",
		Short: "Apply <passes> averaging passes to <input> and write <output>",
		Long: `Applies the 3x3 neighbourhood average <passes> times, prints the elapsed
time and the image size, and writes the result to <output>.

With --checkpoint the working image is also written every 25 passes (or
--checkpoint-every) as after_<pass>_averages.<ext> in the checkpoint
directory.`,
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAverage(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.engine, "engine", engineSequential, "engine: sequential or parallel")
	fl.BoolVar(&f.checkpoint, "checkpoint", false, "write periodic checkpoints (overrides config)")
	fl.IntVar(&f.checkpointEvery, "checkpoint-every", 0, "checkpoint cadence in passes (overrides config)")
	fl.StringVar(&f.checkpointDir, "checkpoint-dir", "", "checkpoint directory (overrides config)")
	return cmd
}

func (a *app) runAverage(cmd *cobra.Command, args []string, f averageFlags) error {
	passes, err := parseBound(args[0])
	if err != nil {
		return err
	}
	input, output := args[1], args[2]

	outFormat, err := imageio.FormatFromPath(output)
	if err != nil || !outFormat.CanEncode() {
		return fmt.Errorf("%w: cannot write output %q", smooth.ErrUsage, output)
	}

	onPass, err := a.checkpointer(cmd, f)
	if err != nil {
		return err
	}

	engine, cleanup, err := a.engine(f.engine)
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := imageio.Load(input)
	if err != nil {
		return err
	}

	start := time.Now()
	g, err = smooth.Apply(engine, g, passes, onPass)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	a.log.Debug("averaging finished",
		slog.Int("passes", passes),
		slog.String("engine", f.engine),
		slog.Duration("elapsed", elapsed))

	if err := a.printer().Summary(passes, elapsed, g); err != nil {
		return err
	}
	return imageio.Save(g, output)
}

// checkpointer returns the per-pass hook for the average command, or nil
// when checkpointing is off.
func (a *app) checkpointer(cmd *cobra.Command, f averageFlags) (smooth.PassFunc, error) {
	ck := a.cfg.Checkpoint
	fl := cmd.Flags()
	if fl.Changed("checkpoint") {
		ck.Enabled = f.checkpoint
	}
	if fl.Changed("checkpoint-every") {
		if f.checkpointEvery < 1 {
			return nil, fmt.Errorf("%w: --checkpoint-every must be > 0", smooth.ErrUsage)
		}
		ck.Every = f.checkpointEvery
	}
	if fl.Changed("checkpoint-dir") {
		ck.Dir = f.checkpointDir
	}
	if !ck.Enabled {
		return nil, nil
	}

	format, err := a.cfg.CheckpointFormat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", smooth.ErrUsage, err)
	}
	w, err := checkpoint.New(ck.Dir, ck.Every, format, a.log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", smooth.ErrUsage, err)
	}
	return w.OnPass, nil
}
