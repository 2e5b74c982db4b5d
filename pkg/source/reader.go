package source

import (
	"bufio"
	"context"
	"io"
)

const (
	// initialBufSize is the scanner's starting buffer allocation.
	initialBufSize = 64 * 1024

	// DefaultMaxLineBytes caps a single line's length. Longer lines
	// surface as a stream read failure.
	DefaultMaxLineBytes = 1024 * 1024
)

// LineReader iterates the lines of one stream, assigning 1-based line
// numbers by position. Safe for sequential use only.
type LineReader struct {
	scanner *bufio.Scanner
	num     int
}

// NewLineReader wraps r. maxLineBytes bounds line length; values below 1
// fall back to DefaultMaxLineBytes.
func NewLineReader(r io.Reader, maxLineBytes int) *LineReader {
	if maxLineBytes < 1 {
		maxLineBytes = DefaultMaxLineBytes
	}
	initial := initialBufSize
	if maxLineBytes < initial {
		initial = maxLineBytes
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), maxLineBytes)
	return &LineReader{scanner: scanner}
}

// Next returns the next line. It returns io.EOF when the stream is
// exhausted, and the underlying read error otherwise.
func (r *LineReader) Next(ctx context.Context) (Line, error) {
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if r.scanner.Scan() {
		r.num++
		return Line{Num: r.num, Text: r.scanner.Text()}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Line{}, err
	}
	return Line{}, io.EOF
}
