// Package smooth repeatedly applies a 3x3 box blur to raster images and
// measures how the run time scales as the number of passes doubles.
//
// # Overview
//
// A Grid holds a rows x cols image with three 8-bit channels per pixel.
// Average computes one output pixel from its clipped 3x3 neighbourhood.
// Two engines apply it to a whole grid:
//
//   - Sequential walks every pixel in row-major order.
//   - Parallel splits the rows into fixed, disjoint ranges (see Partition)
//     and averages each range on its own goroutine.
//
// Both return bit-identical output for the same input.
//
// # Quick Start
//
//	import "github.com/gogpu/smooth"
//
//	g := smooth.FromImage(img)
//
//	// Ten passes on ten workers
//	out, err := smooth.Apply(smooth.NewParallel(), g, 10, nil)
//
//	// Time 1, 2, 4, ... 64 passes
//	runs, err := smooth.NewHarness(smooth.Sequential{}).Collect(g, 64)
//
// # Concurrency
//
// Each Parallel pass reads only its input grid and gives every worker
// exclusive ownership of a block of output rows. The compute phase uses no
// locks or atomics; the Executor's join barrier is the only
// synchronization. The default executor spawns fresh goroutines for each
// pass. Any type with an ExecuteAll method, such as a persistent worker
// pool, can replace it through WithExecutor.
//
// # Coordinate System
//
// Rows run top to bottom and map to image Y; columns run left to right and
// map to image X. Grid coordinates are always (row, col).
package smooth

// Version is the current version of the library.
const Version = "0.1.0"
