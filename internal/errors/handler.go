package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ColorProvider supplies the ANSI sequences used when printing diagnostics.
// A nil ColorProvider prints without color.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCodeFor maps an error returned by a run to the process exit code.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		execErr       ExecutionError
		observerErr   ObserverError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.Is(err, ErrNotFound):
		return ExitErrorNotFound
	case errors.As(err, &execErr), errors.As(err, &observerErr):
		return ExitErrorExecution
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError prints a diagnostic for err and returns the matching exit
// code. A nil err prints nothing and returns ExitSuccess.
//
// Parameters:
//   - err: The error returned by a machine run or a registry lookup.
//   - out: The writer for the diagnostic.
//   - colors: The color provider, may be nil.
//
// Returns:
//   - int: The exit code.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	code := ExitCodeFor(err)
	if err == nil {
		return code
	}

	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	switch code {
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sRun canceled.%s\n", yellow, reset)
	case ExitErrorNotFound:
		fmt.Fprintf(out, "%sUnknown order: %v%s\n", red, err, reset)
	case ExitErrorExecution:
		fmt.Fprintf(out, "%sRun aborted: %v%s\n", red, err, reset)
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", red, err, reset)
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", red, err, reset)
	}
	return code
}
