// Package parsererror defines typed error values used by the import pipeline
// and the store for diagnostics. Row-level errors never abort an import; they
// are logged and counted.
package parsererror

import "fmt"

// RowError represents a failure to parse one field of one data row.
type RowError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s='%s': %v",
		e.Row, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// FileError represents a condition that is fatal to a whole file, such as an
// oversized upload or an undetectable required column.
type FileError struct {
	Source string
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot import %s: %s", e.Source, e.Reason)
}

// StoreError represents a persistence failure.
type StoreError struct {
	Path string
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
