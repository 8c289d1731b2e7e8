// Package genspec parses the generation-spec annotation into a structured
// form and plans which data keys still need a generated value.
package genspec

import (
	"fmt"
	"strings"
)

// Entry describes a single data key that should hold a generated value.
type Entry struct {
	Key    string
	Kind   string
	Params map[string]string
}

// Spec is an ordered list of generation entries with unique keys,
// parsed from one annotation value.
type Spec []Entry

// Plan returns the entries whose key is not yet present in the given data,
// preserving annotation order. An empty plan means nothing has to be written.
func (s Spec) Plan(data map[string][]byte) []Entry {
	var missing []Entry
	for _, entry := range s {
		if _, ok := data[entry.Key]; !ok {
			missing = append(missing, entry)
		}
	}
	return missing
}

// LineError is a single problem found while parsing an annotation line.
type LineError struct {
	Line   int
	Reason string
}

func (e LineError) String() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseError aggregates every problem found in an annotation value, so a
// user can fix all lines in one edit instead of discovering them one by one.
type ParseError struct {
	Lines []LineError
}

func (e *ParseError) Error() string {
	reasons := make([]string, len(e.Lines))
	for i, line := range e.Lines {
		reasons[i] = line.String()
	}
	return "invalid generation annotation: " + strings.Join(reasons, "; ")
}

func (e *ParseError) add(line int, format string, args ...any) {
	e.Lines = append(e.Lines, LineError{Line: line, Reason: fmt.Sprintf(format, args...)})
}
