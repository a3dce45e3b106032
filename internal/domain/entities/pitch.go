package entities

import (
	"fmt"
	"strings"
)

// PitchSource identifies which representation of a roof pitch the user
// entered. The other two representations are always derived from it.
type PitchSource string

// Pitch representations.
const (
	PitchDegrees PitchSource = "degrees"
	PitchPercent PitchSource = "percent"
	// PitchRise is rise in inches per 12 inches of run (x:12).
	PitchRise PitchSource = "rise"
)

// IsValid reports whether s is a known pitch representation.
func (s PitchSource) IsValid() bool {
	switch s {
	case PitchDegrees, PitchPercent, PitchRise:
		return true
	default:
		return false
	}
}

// ParsePitchSource parses a pitch representation name.
func ParsePitchSource(s string) (PitchSource, error) {
	src := PitchSource(strings.ToLower(strings.TrimSpace(s)))
	if !src.IsValid() {
		return "", fmt.Errorf("unknown pitch representation %q (valid: degrees, percent, rise)", s)
	}
	return src, nil
}

// Pitch is a roof pitch held by its single source-of-truth field.
type Pitch struct {
	Source PitchSource
	Value  float64
}

// PitchSet holds all three representations of one pitch.
type PitchSet struct {
	Source  PitchSource `json:"source"`
	Degrees float64     `json:"degrees"`
	Percent float64     `json:"percent"`
	Rise    float64     `json:"rise"`
}
