package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorNotFound  = 2   // Indicates an order name missing from the registry.
	ExitErrorExecution = 3   // Indicates an order or observer fault aborted a run.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

var (
	// ErrNotFound is matched by every NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrMachineBusy is returned when Request or Start is invoked while the
	// machine is draining its queue.
	ErrMachineBusy = errors.New("machine is busy draining its queue")

	// ErrNilOrder is returned when a nil order is submitted.
	ErrNilOrder = errors.New("order is nil")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// NotFoundError reports a registry lookup for a name that was never
// registered.
type NotFoundError struct {
	// Name is the beverage name that was requested.
	Name string
}

// Error returns a formatted message naming the missing entry.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("beverage %q is not on the menu", e.Name)
}

// Is reports whether target is ErrNotFound, so callers can match any
// NotFoundError without caring about the name.
func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ExecutionError wraps a fault raised by an order's Execute. Index is the
// 1-based position of the failing order within a drain cycle of Total orders.
type ExecutionError struct {
	Index int
	Total int
	Cause error
}

// Error returns the position of the failing order and the underlying cause.
func (e ExecutionError) Error() string {
	return fmt.Sprintf("order %d of %d failed: %v", e.Index, e.Total, e.Cause)
}

// Unwrap returns the original fault raised by the order.
func (e ExecutionError) Unwrap() error { return e.Cause }

// ObserverError wraps a fault raised by an observer while it was being
// notified. Event is one of "started", "progress" or "finished".
type ObserverError struct {
	Event string
	Cause error
}

// Error returns the notification that failed and the underlying cause.
func (e ObserverError) Error() string {
	return fmt.Sprintf("observer failed on %s: %v", e.Event, e.Cause)
}

// Unwrap returns the original fault raised by the observer.
func (e ObserverError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
