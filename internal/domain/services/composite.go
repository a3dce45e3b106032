package services

import (
	"fmt"
	"math"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

// ToComposite expresses a length as whole major units plus a minor remainder.
func (s *ConversionService) ToComposite(value float64, from string, ck entities.CompositeKind) (entities.Composite, error) {
	if !ck.IsValid() {
		return entities.Composite{}, fmt.Errorf("%w: %q", entities.ErrUnknownComposite, ck)
	}

	major, err := s.Convert(value, from, ck.Major(), entities.KindLength)
	if err != nil {
		return entities.Composite{}, fmt.Errorf("converting to %s: %w", ck.Major(), err)
	}

	return split(major, ck), nil
}

// FromComposite flattens a composite length into a single unit.
func (s *ConversionService) FromComposite(whole, fraction float64, ck entities.CompositeKind, to string) (float64, error) {
	if !ck.IsValid() {
		return 0, fmt.Errorf("%w: %q", entities.ErrUnknownComposite, ck)
	}
	if !isFinite(whole) || !isFinite(fraction) {
		return 0, fmt.Errorf("composite %v|%v: %w", whole, fraction, entities.ErrInvalidNumber)
	}

	result, err := s.Convert(flatten(whole, fraction, ck), ck.Major(), to, entities.KindLength)
	if err != nil {
		return 0, fmt.Errorf("converting from %s: %w", ck.Major(), err)
	}
	return result, nil
}

// BetweenComposites re-expresses a composite length in another scheme.
// The pair is always recomputed from the flat value, so an un-normalized
// fraction is never carried incrementally.
func (s *ConversionService) BetweenComposites(whole, fraction float64, from, to entities.CompositeKind) (entities.Composite, error) {
	if !from.IsValid() {
		return entities.Composite{}, fmt.Errorf("%w: %q", entities.ErrUnknownComposite, from)
	}
	if !to.IsValid() {
		return entities.Composite{}, fmt.Errorf("%w: %q", entities.ErrUnknownComposite, to)
	}
	if !isFinite(whole) || !isFinite(fraction) {
		return entities.Composite{}, fmt.Errorf("composite %v|%v: %w", whole, fraction, entities.ErrInvalidNumber)
	}

	if from == to {
		return entities.Composite{Whole: whole, Fraction: fraction}, nil
	}

	return s.ToComposite(flatten(whole, fraction, from), from.Major(), to)
}

func split(major float64, ck entities.CompositeKind) entities.Composite {
	whole := math.Floor(major)
	return entities.Composite{
		Whole:    whole,
		Fraction: (major - whole) * ck.MinorPerMajor(),
	}
}

func flatten(whole, fraction float64, ck entities.CompositeKind) float64 {
	return whole + fraction/ck.MinorPerMajor()
}
