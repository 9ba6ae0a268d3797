package integer

import (
	"fmt"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of marshalling and stream codec failures.
	Error = errs.Class("integer")

	// ErrDivisionByZero is the class of errors for a zero divisor.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrParse is the class of errors for malformed integer text.
	ErrParse = errs.Class("parse")

	// ErrOverflow is the class of errors for exact conversions whose target
	// cannot represent the value.
	ErrOverflow = errs.Class("overflow")

	// ErrConversion is the class of errors for floating point inputs that
	// do not denote an integer (NaN, infinities, fractions in exact mode).
	ErrConversion = errs.Class("conversion")

	// ErrNegative is the class of errors for operations undefined on
	// negative operands.
	ErrNegative = errs.Class("negative operand")
)

// SyntaxError describes where parsing of an integer failed. Parse errors
// wrap a *SyntaxError in the ErrParse class.
type SyntaxError struct {
	Text   string
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d in %q", e.Reason, e.Offset, e.Text)
}

func syntaxError(text string, offset int, reason string) error {
	return ErrParse.Wrap(&SyntaxError{
		Text:   text,
		Offset: offset,
		Reason: reason,
	})
}
