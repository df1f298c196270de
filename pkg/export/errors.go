package export

import "fmt"

// ConflictError indicates that a target file already exists and append mode
// was not requested. The item is skipped; the batch continues.
type ConflictError struct {
	Path string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("file %q exists and append was not specified", e.Path)
}

// NewConflictError creates a new ConflictError for the given path.
func NewConflictError(path string) *ConflictError {
	return &ConflictError{Path: path}
}

// WriteError wraps an I/O failure while writing a script to its target.
// Write failures are item-scoped and never retried.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %q failed: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Cause: cause}
}

// EncodingError indicates an unknown or unsupported encoding name.
type EncodingError struct {
	Name string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding %q", e.Name)
}

// NewEncodingError creates a new EncodingError.
func NewEncodingError(name string) *EncodingError {
	return &EncodingError{Name: name}
}
