// Package source resolves command-line inputs into named line streams.
package source

import (
	"io"
	"os"
)

// StdinName is the display name for the standard input stream.
const StdinName = "-"

// Line is a single line read from a stream.
type Line struct {
	// Num is the 1-based line number within the stream.
	Num int

	// Text is the line content without the trailing newline.
	Text string
}

// Stream is a named input awaiting its first read. Opening is deferred so
// that resolving many files does not pin file descriptors.
type Stream struct {
	// Name is the display name: the file path, or "-" for standard input.
	Name string

	open func() (io.ReadCloser, error)
}

// Open returns the stream's reader. The caller owns the returned closer.
func (s Stream) Open() (io.ReadCloser, error) {
	return s.open()
}

// File returns a stream backed by the file at path. The path is kept even
// if it does not exist; the failure surfaces on Open.
func File(path string) Stream {
	return Stream{
		Name: path,
		open: func() (io.ReadCloser, error) {
			return os.Open(path) // #nosec G304 -- user-provided paths are expected
		},
	}
}

// Stdin returns the standard input stream, named "-".
func Stdin() Stream {
	return Stream{
		Name: StdinName,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(os.Stdin), nil
		},
	}
}

// FromReader returns a stream over r with the given display name.
func FromReader(name string, r io.Reader) Stream {
	return Stream{
		Name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}
