package source

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from an input table.
type SchemaError struct {
	Dataset string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column(s): %s",
		e.Dataset, strings.Join(e.Missing, ", "))
}

// DateParseError reports a required date field that could not be parsed.
type DateParseError struct {
	Dataset string
	Column  string
	Value   string
	Row     int // 1-based data row, not counting the header
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s row %d: cannot parse %s value %q as a date",
		e.Dataset, e.Row, e.Column, e.Value)
}

// FieldError reports a required non-date field with an invalid value.
type FieldError struct {
	Dataset string
	Column  string
	Value   string
	Row     int
	Reason  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s row %d: bad %s value %q: %s",
		e.Dataset, e.Row, e.Column, e.Value, e.Reason)
}
