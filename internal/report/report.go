// Package report renders benchmark and smoothing results for the CLI.
package report

import (
	"io"
	"iter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/smooth"
)

// Printer writes result lines with locale-aware number formatting.
type Printer struct {
	w io.Writer
	p *message.Printer
}

// New returns a printer writing to w. tag selects digit grouping and the
// decimal separator; language.English prints 1024 as "1,024".
func New(w io.Writer, tag language.Tag) *Printer {
	return &Printer{w: w, p: message.NewPrinter(tag)}
}

// Run writes one scale as "<passes> : <ratio> : <cumulative seconds>".
// The ratio column is "-" when the scale has no predecessor to compare to.
func (pr *Printer) Run(r smooth.Run) error {
	ratio := "-"
	if r.HasRatio {
		ratio = pr.p.Sprintf("%.4f", r.Ratio)
	}
	_, err := pr.p.Fprintf(pr.w, "%d : %s : %.6f\n", r.Passes, ratio, r.Cumulative.Seconds())
	return err
}

// Runs writes every scale of seq as it is produced and stops at the first
// write error.
func (pr *Printer) Runs(seq iter.Seq[smooth.Run]) error {
	for r := range seq {
		if err := pr.Run(r); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the two-line result of a smoothing run:
// "<n> averages took: <secs> seconds" and "[<cols> x <rows>]".
func (pr *Printer) Summary(passes int, elapsed time.Duration, g *smooth.Grid) error {
	if _, err := pr.p.Fprintf(pr.w, "%d averages took: %.6f seconds\n", passes, elapsed.Seconds()); err != nil {
		return err
	}
	_, err := pr.p.Fprintf(pr.w, "[%d x %d]\n", g.Cols(), g.Rows())
	return err
}

// Identical writes the outcome of an image comparison.
func (pr *Printer) Identical(same bool) error {
	msg := "Images are not identical"
	if same {
		msg = "Images are identical!"
	}
	_, err := pr.p.Fprintln(pr.w, msg)
	return err
}
