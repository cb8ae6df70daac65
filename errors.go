package main

import "fmt"

// UnsupportedFormatError is returned by the loader for file extensions it
// cannot dispatch on.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (only CSV or Excel files supported)", e.Path)
}

// MissingColumnError is returned when an operation needs a column that is not
// present in the table.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s column is required but missing", e.Column)
}
