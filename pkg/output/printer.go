// Package output renders scan results as human-readable text.
package output

import (
	"fmt"
	"io"

	"greplite/pkg/highlight"
	"greplite/pkg/source"
)

// Options controls printer behavior.
type Options struct {
	// Multi prefixes every line with its source name. Set when more than
	// one input stream is resolved.
	Multi bool

	// Spans enumerates match spans for highlighting. Nil disables
	// highlighting entirely.
	Spans func(line string) [][]int
}

// Printer writes matched lines, context lines, per-source counts, and
// read diagnostics to a single writer.
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter creates a printer writing to w with the given options.
func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Match writes a matched line, highlighting pattern occurrences when
// highlighting is enabled.
func (p *Printer) Match(name string, ln source.Line) {
	text := ln.Text
	if p.opts.Spans != nil {
		text = highlight.Apply(text, p.opts.Spans(text))
	}
	p.line(name, ln.Num, text)
}

// Context writes a context line verbatim, never highlighted.
func (p *Printer) Context(name string, ln source.Line) {
	p.line(name, ln.Num, ln.Text)
}

// Count writes the per-source count summary.
func (p *Printer) Count(name string, n int) {
	if p.opts.Multi {
		fmt.Fprintf(p.w, "%s: %d\n", name, n)
		return
	}
	fmt.Fprintf(p.w, "%d\n", n)
}

// ReadError reports a mid-stream read failure inline with normal output,
// so the notice lands where the stream's lines stop.
func (p *Printer) ReadError(name string, err error) {
	fmt.Fprintf(p.w, "%s: error reading input: %v\n", name, err)
}

func (p *Printer) line(name string, num int, text string) {
	if p.opts.Multi {
		fmt.Fprintf(p.w, "%s:%d: %s\n", name, num, text)
		return
	}
	fmt.Fprintf(p.w, "%d: %s\n", num, text)
}
