package types

import (
	"fmt"
)

type (
	// Reason enumerates why an expression could not be typed.
	Reason int
	// Error describes a single typing failure. It names the operator or symbol
	// that failed and the concrete types involved so callers can report it or
	// react to it without parsing the message.
	Error struct {
		Reason Reason
		// Op is the operator name for call failures.
		Op string
		// Symbol is the unresolved name for UnboundSymbol failures.
		Symbol string
		// Args are the operand types the operator was applied to.
		Args []Type
		// Low and High are the offending bounds for InvalidInterval failures.
		Low, High float64
	}
)

const (
	// UnboundSymbol means a symbol had no entry in the environment.
	UnboundSymbol Reason = iota
	// NoMatchingSignature means no rule types the operator for these operands.
	NoMatchingSignature
	// ShapeMismatch means matrix operands are not conformable.
	ShapeMismatch
	// PossibleZeroOverZero means a division may evaluate 0/0.
	PossibleZeroOverZero
	// PossibleInfOverInf means a division may evaluate inf/inf.
	PossibleInfOverInf
	// InvalidInterval means a bound pair is negative or not forward pointing.
	InvalidInterval
)

var (
	// ErrUnboundSymbol matches any UnboundSymbol failure with errors.Is.
	ErrUnboundSymbol = &Error{Reason: UnboundSymbol}
	// ErrNoMatchingSignature matches any NoMatchingSignature failure with errors.Is.
	ErrNoMatchingSignature = &Error{Reason: NoMatchingSignature}
	// ErrShapeMismatch matches any ShapeMismatch failure with errors.Is.
	ErrShapeMismatch = &Error{Reason: ShapeMismatch}
	// ErrPossibleZeroOverZero matches any PossibleZeroOverZero failure with errors.Is.
	ErrPossibleZeroOverZero = &Error{Reason: PossibleZeroOverZero}
	// ErrPossibleInfOverInf matches any PossibleInfOverInf failure with errors.Is.
	ErrPossibleInfOverInf = &Error{Reason: PossibleInfOverInf}
	// ErrInvalidInterval matches any InvalidInterval failure with errors.Is.
	ErrInvalidInterval = &Error{Reason: InvalidInterval}
)

func (r Reason) String() string {
	switch r {
	case UnboundSymbol:
		return "UnboundSymbol"
	case NoMatchingSignature:
		return "NoMatchingSignature"
	case ShapeMismatch:
		return "ShapeMismatch"
	case PossibleZeroOverZero:
		return "PossibleZeroOverZero"
	case PossibleInfOverInf:
		return "PossibleInfOverInf"
	case InvalidInterval:
		return "InvalidInterval"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (err *Error) Error() string {
	switch err.Reason {
	case UnboundSymbol:
		return fmt.Sprintf("unbound symbol %q", err.Symbol)
	case NoMatchingSignature:
		return fmt.Sprintf("no signature matches %s%s", err.Op, Format(err.Args))
	case ShapeMismatch:
		return fmt.Sprintf("shape mismatch in %s%s", err.Op, Format(err.Args))
	case PossibleZeroOverZero:
		return fmt.Sprintf("%s%s may evaluate 0/0", err.Op, Format(err.Args))
	case PossibleInfOverInf:
		return fmt.Sprintf("%s%s may evaluate inf/inf", err.Op, Format(err.Args))
	case InvalidInterval:
		if err.Op != "" {
			return fmt.Sprintf("%s%s yields invalid interval (%v, %v)", err.Op, Format(err.Args), err.Low, err.High)
		}
		return fmt.Sprintf("invalid interval (%v, %v)", err.Low, err.High)
	default:
		return err.Reason.String()
	}
}

// Is matches any *Error with the same Reason.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Reason == err.Reason
}

// NoSignature builds a NoMatchingSignature failure for op applied to args.
func NoSignature(op string, args ...Type) *Error {
	return &Error{Reason: NoMatchingSignature, Op: op, Args: args}
}
