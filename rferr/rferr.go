// Package rferr defines the error taxonomy shared by all rflib formula
// packages. Every failure returned by the library wraps exactly one of the
// sentinels below, so callers can dispatch with errors.Is without parsing
// messages.
package rferr

import (
	"errors"
	"fmt"

	"github.com/pipebots/t6-rflib/internal/observability"
)

var (
	// ErrDomain indicates the requested evaluation is mathematically
	// undefined for the given inputs: zero or negative frequency where a
	// wavelength or angular frequency sits in a denominator, a zero
	// length, thickness or permittivity being divided by, a non-positive
	// argument to a logarithm, or a negative material parameter.
	ErrDomain = errors.New("rflib: input outside formula domain")

	// ErrComputation indicates a formula produced a NaN or otherwise
	// non-real result from inputs that passed the domain checks, which
	// points at an internally inconsistent combination such as a negative
	// product under a square root.
	ErrComputation = errors.New("rflib: formula produced a non-real result")

	// ErrStructural indicates caller-supplied paired slices of mismatched
	// length. Rejected before any arithmetic is attempted.
	ErrStructural = errors.New("rflib: mismatched input collections")

	// ErrInvalidArgument indicates an unrecognized mode or unit selector
	// string.
	ErrInvalidArgument = errors.New("rflib: unrecognized selector")
)

// Domainf wraps ErrDomain with a formatted detail message.
func Domainf(format string, args ...any) error {
	observability.CountError("domain")
	return fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
}

// Computationf wraps ErrComputation with a formatted detail message.
func Computationf(format string, args ...any) error {
	observability.CountError("computation")
	return fmt.Errorf("%w: %s", ErrComputation, fmt.Sprintf(format, args...))
}

// Structuralf wraps ErrStructural with a formatted detail message.
func Structuralf(format string, args ...any) error {
	observability.CountError("structural")
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(format, args...))
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted detail message.
func InvalidArgumentf(format string, args ...any) error {
	observability.CountError("invalid_argument")
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Kind reports the taxonomy label for err: "domain", "computation",
// "structural", "invalid_argument", or "unknown" for errors that did not
// originate in this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDomain):
		return "domain"
	case errors.Is(err, ErrComputation):
		return "computation"
	case errors.Is(err, ErrStructural):
		return "structural"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "unknown"
	}
}
