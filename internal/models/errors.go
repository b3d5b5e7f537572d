package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrConfiguration ErrorType = iota
	ErrPermission
	ErrStub
	ErrFileOp
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrConfiguration:
		return "Configuration"
	case ErrPermission:
		return "Permission"
	case ErrStub:
		return "Stub"
	case ErrFileOp:
		return "FileOp"
	default:
		return "Unknown"
	}
}

// GenError represents an error during artifact generation
type GenError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *GenError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *GenError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps err as a configuration error.
func NewConfigError(path string, err error) *GenError {
	return &GenError{Type: ErrConfiguration, Path: path, Err: err}
}

// NewPermissionError reports a directory that cannot be written to.
func NewPermissionError(dir string) *GenError {
	return &GenError{
		Type: ErrPermission,
		Path: dir,
		Err:  errors.New("not writable directory, check permissions"),
	}
}

// NewStubError reports a stub template that could not be found.
func NewStubError(name string) *GenError {
	return &GenError{
		Type: ErrStub,
		Path: name,
		Err:  errors.New("stub file does not exist"),
	}
}

// IsType reports whether err wraps a GenError of type t.
func IsType(err error, t ErrorType) bool {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Type == t
	}
	return false
}

// IsConfiguration reports whether err is a configuration error. A missing stub
// counts as a configuration problem.
func IsConfiguration(err error) bool {
	return IsType(err, ErrConfiguration) || IsType(err, ErrStub)
}

// IsPermission reports whether err is a permission error.
func IsPermission(err error) bool {
	return IsType(err, ErrPermission)
}
