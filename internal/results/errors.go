package results

import "fmt"

// MissingInputError reports that no file in the results directory matched the
// discovery pattern for a chart.
type MissingInputError struct {
	Dir     string
	Pattern string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no result file matching %q found in %s", e.Pattern, e.Dir)
}

// AmbiguousInputError reports that more than one candidate matched the
// discovery pattern while the strict selection policy was in effect.
type AmbiguousInputError struct {
	Dir        string
	Pattern    string
	Candidates []string
}

func (e *AmbiguousInputError) Error() string {
	return fmt.Sprintf("%d files matching %q in %s: %v", len(e.Candidates), e.Pattern, e.Dir, e.Candidates)
}

// SchemaError reports a required column that is absent from a loaded table.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: required column %q not found", e.File, e.Column)
}

// ParseError reports a cell that could not be parsed as a number. Row is the
// 1-based data row (the header row is not counted).
type ParseError struct {
	File   string
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d, column %q: %v", e.File, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
