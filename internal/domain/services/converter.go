package services

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/ports"
)

// ConversionService converts values between units of one quantity kind.
type ConversionService struct {
	catalog ports.UnitCatalog
}

// NewConversionService creates a new ConversionService.
func NewConversionService(catalog ports.UnitCatalog) *ConversionService {
	return &ConversionService{
		catalog: catalog,
	}
}

// Convert converts value from one unit to another within kind.
// No rounding is applied.
func (s *ConversionService) Convert(value float64, from, to string, kind entities.Kind) (float64, error) {
	if !isFinite(value) {
		return 0, fmt.Errorf("converting %v: %w", value, entities.ErrInvalidNumber)
	}

	fromUnit, err := s.catalog.Lookup(kind, from)
	if err != nil {
		return 0, err
	}
	toUnit, err := s.catalog.Lookup(kind, to)
	if err != nil {
		return 0, err
	}

	return s.convert(value, fromUnit, toUnit), nil
}

// ConvertUnits converts between two resolved units.
func (s *ConversionService) ConvertUnits(value float64, from, to entities.Unit) (float64, error) {
	if from.Kind != to.Kind {
		return 0, fmt.Errorf("converting %s to %s: %w", from.Kind, to.Kind, entities.ErrKindMismatch)
	}
	if !isFinite(value) {
		return 0, fmt.Errorf("converting %v: %w", value, entities.ErrInvalidNumber)
	}
	return s.convert(value, from, to), nil
}

func (s *ConversionService) convert(value float64, from, to entities.Unit) float64 {
	if from.Symbol == to.Symbol {
		return value
	}
	if f, ok := s.catalog.DirectFactor(from.Kind, from.Symbol, to.Symbol); ok {
		return value * f
	}
	return value * from.ToBase / to.ToBase
}

// Lookup resolves a symbol within kind.
func (s *ConversionService) Lookup(kind entities.Kind, symbol string) (entities.Unit, error) {
	return s.catalog.Lookup(kind, symbol)
}

// Units lists the units of a kind.
func (s *ConversionService) Units(kind entities.Kind) []entities.Unit {
	return s.catalog.Units(kind)
}

// InferKind returns the single kind that recognizes both symbols.
func (s *ConversionService) InferKind(from, to string) (entities.Kind, error) {
	matches := lo.Filter(entities.Kinds(), func(k entities.Kind, _ int) bool {
		_, errFrom := s.catalog.Lookup(k, from)
		_, errTo := s.catalog.Lookup(k, to)
		return errFrom == nil && errTo == nil
	})

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no quantity kind recognizes both %q and %q: %w", from, to, entities.ErrUnknownUnit)
	case 1:
		return matches[0], nil
	default:
		names := lo.Map(matches, func(k entities.Kind, _ int) string { return k.String() })
		return 0, fmt.Errorf("%q and %q match kinds %v: %w", from, to, names, entities.ErrAmbiguousUnits)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
