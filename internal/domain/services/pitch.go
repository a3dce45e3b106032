package services

import (
	"fmt"
	"math"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// risePerRun is the run that rise is quoted against (x:12).
const risePerRun = 12

// PitchService derives every representation of a roof pitch from the one
// the user entered.
type PitchService struct {
	converter *ConversionService
}

// NewPitchService creates a new PitchService.
func NewPitchService(converter *ConversionService) *PitchService {
	return &PitchService{
		converter: converter,
	}
}

// With returns the pitch after the user edits one field. The edited field
// becomes the source of truth.
func (s *PitchService) With(source entities.PitchSource, value float64) (entities.Pitch, error) {
	if !source.IsValid() {
		return entities.Pitch{}, fmt.Errorf("unknown pitch representation %q", source)
	}
	if !isFinite(value) {
		return entities.Pitch{}, fmt.Errorf("pitch %s: %w", source, entities.ErrInvalidNumber)
	}
	return entities.Pitch{Source: source, Value: value}, nil
}

// Derive computes all three representations. The source value is returned
// as given; the other two are derived from it.
func (s *PitchService) Derive(p entities.Pitch) (entities.PitchSet, error) {
	degrees, err := s.degrees(p)
	if err != nil {
		return entities.PitchSet{}, err
	}

	rad, err := s.converter.Convert(degrees, "deg", "rad", entities.KindAngle)
	if err != nil {
		return entities.PitchSet{}, fmt.Errorf("converting pitch angle: %w", err)
	}
	slope := math.Tan(rad)

	set := entities.PitchSet{
		Source:  p.Source,
		Degrees: degrees,
		Percent: slope * 100,
		Rise:    slope * risePerRun,
	}

	switch p.Source {
	case entities.PitchPercent:
		set.Percent = p.Value
	case entities.PitchRise:
		set.Rise = p.Value
	}
	return set, nil
}

func (s *PitchService) degrees(p entities.Pitch) (float64, error) {
	if !isFinite(p.Value) {
		return 0, fmt.Errorf("pitch %s: %w", p.Source, entities.ErrInvalidNumber)
	}

	switch p.Source {
	case entities.PitchDegrees:
		if p.Value < 0 || p.Value >= 90 {
			return 0, fmt.Errorf("%v degrees: %w", p.Value, entities.ErrPitchOutOfRange)
		}
		return p.Value, nil
	case entities.PitchPercent:
		return s.slopeDegrees(p.Value / 100)
	case entities.PitchRise:
		return s.slopeDegrees(p.Value / risePerRun)
	default:
		return 0, fmt.Errorf("unknown pitch representation %q", p.Source)
	}
}

func (s *PitchService) slopeDegrees(slope float64) (float64, error) {
	if slope < 0 {
		return 0, fmt.Errorf("negative slope %v: %w", slope, entities.ErrPitchOutOfRange)
	}
	deg, err := s.converter.Convert(math.Atan(slope), "rad", "deg", entities.KindAngle)
	if err != nil {
		return 0, fmt.Errorf("converting pitch angle: %w", err)
	}
	return deg, nil
}
