package models

import "fmt"

// ParseError means the input document was not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError means the document parsed but failed schema validation.
// Validation fails closed: one bad candidate invalidates the whole document.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid backup file format: %s", e.Reason)
}

// UnsupportedFileTypeError means an upload is neither of the accepted
// document types.
type UnsupportedFileTypeError struct {
	Filename string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (expected .pdf or .docx)", e.Filename)
}

// StorageError wraps a persistent read/write failure. Recoverable at the
// caller: surface a message and allow retry.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
