package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/poiesic/searchit/core"
)

// Reporter writes per-file match blocks: a header naming the file, followed
// by its formatted matched lines. Files with zero matches never reach the
// reporter, so every block has at least one line.
type Reporter struct {
	writer io.Writer
	color  bool
	header *color.Color
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor enables or disables colored file headers. Off by default; the
// caller decides based on whether the stream is a terminal.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		writer: w,
		header: color.New(color.FgMagenta),
	}
	r.header.EnableColor()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report emits every result as a block separated by a blank line. An empty
// result set writes nothing; that is a valid outcome, not an error.
func (r *Reporter) Report(results []core.FileResult) error {
	for _, result := range results {
		header := "In file: " + result.Path
		if r.color {
			header = r.header.Sprint(header)
		}
		if _, err := fmt.Fprintf(r.writer, "\n%s\n", header); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		for _, line := range result.Lines {
			if _, err := fmt.Fprintln(r.writer, line); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		}
	}
	return nil
}

// ReportLines writes bare formatted lines without a file header. Used by
// the single-file path, where naming the only file would be noise.
func (r *Reporter) ReportLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
