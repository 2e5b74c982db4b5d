// Package matcher implements the line predicate: a compiled pattern with
// case folding and optional inversion.
package matcher

import (
	"fmt"
	"regexp"
)

// Matcher reports whether lines qualify and enumerates match spans for
// highlighting. Immutable once built; shared by every stream of a run.
type Matcher struct {
	re     *regexp.Regexp
	invert bool
}

// New compiles pattern. ignoreCase folds case via the regexp (?i) flag;
// invert flips the predicate for every line.
func New(pattern string, ignoreCase, invert bool) (*Matcher, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re, invert: invert}, nil
}

// Match reports whether line qualifies: the pattern result XOR invert.
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line) != m.invert
}

// Spans returns the [start, end) byte ranges of every pattern occurrence
// in line, in order. Inverted matchers return nil: their qualifying lines
// do not contain the pattern, so there is nothing to mark.
func (m *Matcher) Spans(line string) [][]int {
	if m.invert {
		return nil
	}
	return m.re.FindAllStringIndex(line, -1)
}
