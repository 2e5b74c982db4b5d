// Package highlight marks match spans in a line with ANSI escape codes.
package highlight

import "strings"

// Bold bright red, the conventional match color.
const (
	mark  = "\x1b[1;91m"
	reset = "\x1b[0m"
)

// Apply wraps each [start, end) span of line in ANSI bold bright red.
// Spans must be non-overlapping and in ascending order, as produced by
// regexp FindAllStringIndex. Empty spans are skipped. With no spans the
// line is returned unchanged.
func Apply(line string, spans [][]int) string {
	if len(spans) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + len(spans)*(len(mark)+len(reset)))
	last := 0
	for _, s := range spans {
		start, end := s[0], s[1]
		if start >= end {
			continue
		}
		b.WriteString(line[last:start])
		b.WriteString(mark)
		b.WriteString(line[start:end])
		b.WriteString(reset)
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}
