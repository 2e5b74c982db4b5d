// Package scan implements the streaming line scanner: it walks each input
// stream once, emitting matched lines and their surrounding context in
// source order.
package scan

import (
	"context"
	"errors"
	"io"

	"greplite/pkg/source"
)

// Config controls a scan run. The same configuration applies to every
// stream of the run.
type Config struct {
	// Before is the number of preceding lines to emit around each match.
	Before int

	// After is the number of following lines to emit around each match.
	After int

	// CountOnly suppresses line output and reports only the number of
	// lines that would have been printed per stream.
	CountOnly bool

	// MaxLineBytes bounds the length of a single line. Zero means the
	// source default.
	MaxLineBytes int
}

// Matcher decides whether a line qualifies.
type Matcher interface {
	Match(line string) bool
}

// Sink receives scan results in emission order.
type Sink interface {
	// Match receives a matched line.
	Match(name string, ln source.Line)

	// Context receives a context line surrounding a match.
	Context(name string, ln source.Line)

	// Count receives the per-stream result count in count mode.
	Count(name string, n int)

	// ReadError receives a diagnostic when a stream cannot be opened or
	// fails mid-read. The scan moves on to the next stream.
	ReadError(name string, err error)
}

// Scanner applies a matcher with context windows to line streams.
type Scanner struct {
	matcher Matcher
	cfg     Config
	sink    Sink
}

// New creates a scanner. Streams passed to Scan share the matcher,
// configuration, and sink; per-stream state is never carried over.
func New(m Matcher, cfg Config, sink Sink) *Scanner {
	return &Scanner{matcher: m, cfg: cfg, sink: sink}
}

// state holds the context-window bookkeeping for a single stream.
type state struct {
	// before holds up to cfg.Before unemitted preceding lines, oldest
	// first. Flushed on match, discarded at end of stream.
	before []source.Line

	// afterLeft counts lines still owed as after-context from the most
	// recent match.
	afterLeft int

	// count is the number of lines emitted, matches and context alike.
	count int
}

// Scan processes one stream from start to finish. Open and read failures
// are reported through the sink and end that stream only; the returned
// error is non-nil only when ctx is done.
func (s *Scanner) Scan(ctx context.Context, stream source.Stream) error {
	rc, err := stream.Open()
	if err != nil {
		s.sink.ReadError(stream.Name, err)
		return nil
	}
	defer rc.Close()

	st := &state{}
	if s.cfg.Before > 0 {
		st.before = make([]source.Line, 0, s.cfg.Before)
	}

	r := source.NewLineReader(rc, s.cfg.MaxLineBytes)
	for {
		ln, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			s.sink.ReadError(stream.Name, err)
			break
		}

		switch {
		case s.matcher.Match(ln.Text):
			// Held lines become before-context, oldest first.
			for _, held := range st.before {
				s.context(st, stream.Name, held)
			}
			st.before = st.before[:0]
			s.match(st, stream.Name, ln)
			st.afterLeft = s.cfg.After
		case st.afterLeft > 0:
			// After-context takes precedence over buffering, so a line
			// close behind one match and ahead of the next is emitted
			// exactly once.
			s.context(st, stream.Name, ln)
			st.afterLeft--
		case s.cfg.Before > 0:
			if len(st.before) == s.cfg.Before {
				st.before = st.before[1:]
			}
			st.before = append(st.before, ln)
		}
	}

	if s.cfg.CountOnly {
		s.sink.Count(stream.Name, st.count)
	}
	return nil
}

func (s *Scanner) match(st *state, name string, ln source.Line) {
	st.count++
	if s.cfg.CountOnly {
		return
	}
	s.sink.Match(name, ln)
}

func (s *Scanner) context(st *state, name string, ln source.Line) {
	st.count++
	if s.cfg.CountOnly {
		return
	}
	s.sink.Context(name, ln)
}
