// Package checkpoint persists the working grid periodically while a long
// smoothing run progresses.
package checkpoint

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gogpu/smooth"
	"github.com/gogpu/smooth/internal/imageio"
)

// DefaultEvery is the default checkpoint cadence in completed passes.
const DefaultEvery = 25

// SaveFunc persists a grid to path.
type SaveFunc func(g *smooth.Grid, path string) error

// Writer saves the grid every Every completed passes to
// Dir/after_<pass>_averages<ext>.
type Writer struct {
	dir    string
	every  int
	format imageio.Format
	save   SaveFunc
	log    *slog.Logger
}

// New creates a checkpoint writer. every <= 0 selects DefaultEvery.
// Returns imageio.ErrUnsupportedFormat if format cannot be encoded.
func New(dir string, every int, format imageio.Format, log *slog.Logger) (*Writer, error) {
	if !format.CanEncode() {
		return nil, fmt.Errorf("checkpoint: %w: %q", imageio.ErrUnsupportedFormat, format)
	}
	if every <= 0 {
		every = DefaultEvery
	}
	if log == nil {
		log = smooth.Logger()
	}
	return &Writer{
		dir:    dir,
		every:  every,
		format: format,
		save:   imageio.Save,
		log:    log,
	}, nil
}

// Every returns the cadence in passes.
func (w *Writer) Every() int {
	return w.every
}

// Path returns the file a checkpoint after pass would be written to.
func (w *Writer) Path(pass int) string {
	return filepath.Join(w.dir, fmt.Sprintf("after_%d_averages%s", pass, w.format.Ext()))
}

// OnPass saves g when pass is a multiple of the cadence. It matches
// smooth.PassFunc and is meant to be handed to smooth.Apply.
func (w *Writer) OnPass(pass int, g *smooth.Grid) error {
	if pass%w.every != 0 {
		return nil
	}
	path := w.Path(pass)
	if err := w.save(g, path); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	w.log.Info("checkpoint written", slog.Int("pass", pass), slog.String("path", path))
	return nil
}
