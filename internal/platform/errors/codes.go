// Package errors provides structured error handling for file rewrites.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeInputNotFound   Code = "INPUT_NOT_FOUND"
	CodeInputUnreadable Code = "INPUT_UNREADABLE"
	CodeInputNotUTF8    Code = "INPUT_NOT_UTF8"

	// Output errors
	CodeOutputWriteFailed Code = "OUTPUT_WRITE_FAILED"
)

// IsInput reports whether the code describes a failure to load the input file.
func (c Code) IsInput() bool {
	switch c {
	case CodeInputNotFound, CodeInputUnreadable, CodeInputNotUTF8:
		return true
	default:
		return false
	}
}
