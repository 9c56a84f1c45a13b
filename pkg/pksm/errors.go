package pksm

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled an operation (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrFolderNotFound indicates a directory could not be listed. The file
	// chooser recovers from it by showing a placeholder entry.
	ErrFolderNotFound = errors.New("folder doesn't exist")

	// ErrUnknownLanguage indicates a config names a language with no
	// locale or region data.
	ErrUnknownLanguage = errors.New("unknown language")
)

// InfrastructureError represents a client-level error that indicates
// something is wrong with the environment rather than with user input
// (the config file cannot be written, locale data is corrupt, a backend
// failed to start). These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "load_locale")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pksm: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pksm: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
