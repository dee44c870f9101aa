// Package errors provides standardized error types and helpers for the ccss2edr converters.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
	// ErrInvalidStartWavelength indicates spectral data starting after the canonical 380 nm
	ErrInvalidStartWavelength = errors.New("invalid start wavelength")
	// ErrInvalidGridShape indicates a fixed-grid source with the wrong number of rows or columns
	ErrInvalidGridShape = errors.New("invalid grid shape")
	// ErrInconsistent indicates counts that disagree inside a single source
	ErrInconsistent = errors.New("inconsistent spectral data")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "CGATS", "CSV", "EDR")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// StartWavelengthError reports spectral data that starts after 380 nm.
// Such data cannot be aligned to the canonical grid without fabricating samples.
type StartWavelengthError struct {
	StartNM float64 // Declared start wavelength
	LimitNM float64 // Latest accepted start wavelength
}

func (e *StartWavelengthError) Error() string {
	return fmt.Sprintf("spectral data start must be <= %g nm, is %g", e.LimitNM, e.StartNM)
}

func (e *StartWavelengthError) Unwrap() error {
	return ErrInvalidStartWavelength
}

// GridShapeError reports a fixed-grid matrix whose shape is not accepted.
type GridShapeError struct {
	Rows        int // Observed row count
	Cols        int // Observed column count (of the offending row)
	MinRows     int // Required minimum row count
	WantCols    int // Required column count
	OffendingAt int // Row index with the wrong column count, -1 if the row count failed
}

func (e *GridShapeError) Error() string {
	if e.OffendingAt >= 0 {
		return fmt.Sprintf("grid row %d has %d columns, want %d", e.OffendingAt, e.Cols, e.WantCols)
	}
	return fmt.Sprintf("grid has %d rows, want at least %d", e.Rows, e.MinRows)
}

func (e *GridShapeError) Unwrap() error {
	return ErrInvalidGridShape
}

// ConsistencyError reports two counts inside one source that must agree but don't.
type ConsistencyError struct {
	What string // What was counted (e.g., "spectral sets", "bands in row 3")
	Want int    // Declared count
	Got  int    // Observed count
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: declared %d, found %d", e.What, e.Want, e.Got)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistent
}

// Helper functions for creating common errors

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// NewInconsistent creates a ConsistencyError
func NewInconsistent(what string, want, got int) *ConsistencyError {
	return &ConsistencyError{
		What: what,
		Want: want,
		Got:  got,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
