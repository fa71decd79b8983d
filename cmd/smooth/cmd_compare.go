package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/imageio"
)

// =============================================================================
// COMPARE COMMAND - pixel-exact equality of two images
// =============================================================================

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <image-a> <image-b>",
		Short: "Report whether two images are pixel-for-pixel identical",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCompare(args[0], args[1])
		},
	}
}

func (a *app) runCompare(pathA, pathB string) error {
	ga, err := imageio.Load(pathA)
	if err != nil {
		return err
	}
	gb, err := imageio.Load(pathB)
	if err != nil {
		return err
	}

	same, err := smooth.Compare(ga, gb)
	if err != nil {
		return err
	}
	return a.printer().Identical(same)
}
