package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a unit symbol is not recognized for a kind.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownKind is returned for an unrecognized quantity kind name.
	ErrUnknownKind = errors.New("unknown quantity kind")
	// ErrUnknownComposite is returned for an unsupported composite scheme.
	ErrUnknownComposite = errors.New("unknown composite scheme")
	// ErrInvalidNumber is returned for empty, non-numeric or non-finite input.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrKindMismatch is returned when two units of different kinds are combined.
	ErrKindMismatch = errors.New("unit kinds differ")
	// ErrAmbiguousUnits is returned when more than one kind recognizes a unit pair.
	ErrAmbiguousUnits = errors.New("ambiguous units")
	// ErrPitchOutOfRange is returned for pitches outside 0 <= angle < 90 degrees.
	ErrPitchOutOfRange = errors.New("pitch out of range")
)

// UnknownUnitError reports an unrecognized symbol together with the kind it
// was looked up in.
type UnknownUnitError struct {
	Kind   Kind
	Symbol string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown %s unit %q", e.Kind, e.Symbol)
}

// Is makes errors.Is(err, ErrUnknownUnit) match.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}
