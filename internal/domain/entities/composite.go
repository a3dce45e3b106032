package entities

import (
	"fmt"
	"strings"
)

// CompositeKind names a major+minor display scheme for lengths.
type CompositeKind string

// Supported composite schemes.
const (
	CompositeFeetInches        CompositeKind = "ft-in"
	CompositeMetersCentimeters CompositeKind = "m-cm"
)

type compositeScheme struct {
	major         string
	minor         string
	minorPerMajor float64
}

var compositeSchemes = map[CompositeKind]compositeScheme{
	CompositeFeetInches:        {major: "ft", minor: "in", minorPerMajor: 12},
	CompositeMetersCentimeters: {major: "m", minor: "cm", minorPerMajor: 100},
}

// CompositeKinds returns the supported schemes.
func CompositeKinds() []CompositeKind {
	return []CompositeKind{CompositeFeetInches, CompositeMetersCentimeters}
}

// IsValid reports whether c is a supported scheme.
func (c CompositeKind) IsValid() bool {
	_, ok := compositeSchemes[c]
	return ok
}

// Major returns the length symbol of the whole part.
func (c CompositeKind) Major() string {
	return compositeSchemes[c].major
}

// Minor returns the length symbol of the fractional part.
func (c CompositeKind) Minor() string {
	return compositeSchemes[c].minor
}

// MinorPerMajor returns how many minor units make one major unit.
// It is zero for an unsupported scheme.
func (c CompositeKind) MinorPerMajor() float64 {
	return compositeSchemes[c].minorPerMajor
}

// ParseCompositeKind parses "ft-in" or "m-cm".
func ParseCompositeKind(s string) (CompositeKind, error) {
	c := CompositeKind(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownComposite, s)
	}
	return c, nil
}

// Composite is a length expressed as a whole major part plus a remainder
// in the minor unit, e.g. 5 ft 6 in.
type Composite struct {
	Whole    float64 `json:"whole" msgpack:"whole"`
	Fraction float64 `json:"fraction" msgpack:"fraction"`
}
