// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// Kind is the physical quantity a unit measures.
// Units of different kinds are never interconvertible.
type Kind uint8

// Supported quantity kinds. The zero value is not a valid kind.
const (
	KindLength Kind = iota + 1
	KindArea
	KindVolume
	KindAngle
	KindMass
	KindDensity
)

var kindNames = map[Kind]string{
	KindLength:  "length",
	KindArea:    "area",
	KindVolume:  "volume",
	KindAngle:   "angle",
	KindMass:    "mass",
	KindDensity: "density",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLength, KindArea, KindVolume, KindAngle, KindMass, KindDensity}
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind parses a kind name. "weight" is accepted as an alias for mass.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "weight" {
		return KindMass, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
