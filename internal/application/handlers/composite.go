package handlers

import (
	"fmt"
	"strings"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

// CompositeHandler handles two-field length entry (feet+inches, meters+centimeters).
type CompositeHandler struct {
	converter *services.ConversionService
}

// NewCompositeHandler creates a new composite handler.
func NewCompositeHandler(converter *services.ConversionService) *CompositeHandler {
	return &CompositeHandler{
		converter: converter,
	}
}

// CompositeResult is a length shown as whole major units plus minor units.
type CompositeResult struct {
	Scheme    entities.CompositeKind `json:"scheme"`
	Composite entities.Composite     `json:"composite"`
}

// Display renders the result as e.g. "5 ft 6 in".
func (r *CompositeResult) Display(opts services.FormatOptions) string {
	return fmt.Sprintf("%s %s %s %s",
		services.FormatNumber(r.Composite.Whole, opts), r.Scheme.Major(),
		services.FormatNumber(r.Composite.Fraction, opts), r.Scheme.Minor())
}

// HandleTo splits a flat length into the given scheme.
func (h *CompositeHandler) HandleTo(valueText, from, scheme string) (*CompositeResult, error) {
	value, err := services.ParseNumber(valueText)
	if err != nil {
		return nil, err
	}
	ck, err := entities.ParseCompositeKind(scheme)
	if err != nil {
		return nil, err
	}

	c, err := h.converter.ToComposite(value, from, ck)
	if err != nil {
		return nil, err
	}
	return &CompositeResult{Scheme: ck, Composite: c}, nil
}

// HandleFrom flattens whole and fraction fields into a single length.
func (h *CompositeHandler) HandleFrom(wholeText, fractionText, scheme, to string, opts services.FormatOptions) (*ConvertResult, error) {
	whole, fraction, err := parseFields(wholeText, fractionText)
	if err != nil {
		return nil, err
	}
	ck, err := entities.ParseCompositeKind(scheme)
	if err != nil {
		return nil, err
	}

	value, err := h.converter.FromComposite(whole, fraction, ck, to)
	if err != nil {
		return nil, err
	}
	toUnit, err := h.converter.Lookup(entities.KindLength, to)
	if err != nil {
		return nil, err
	}
	majorUnit, err := h.converter.Lookup(entities.KindLength, ck.Major())
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		Kind:      entities.KindLength,
		From:      majorUnit,
		To:        toUnit,
		Input:     whole + fraction/ck.MinorPerMajor(),
		Value:     value,
		Formatted: services.FormatNumber(value, opts),
	}, nil
}

// HandleBetween switches a composite length from one scheme to another.
func (h *CompositeHandler) HandleBetween(wholeText, fractionText, fromScheme, toScheme string) (*CompositeResult, error) {
	whole, fraction, err := parseFields(wholeText, fractionText)
	if err != nil {
		return nil, err
	}
	from, err := entities.ParseCompositeKind(fromScheme)
	if err != nil {
		return nil, err
	}
	to, err := entities.ParseCompositeKind(toScheme)
	if err != nil {
		return nil, err
	}

	c, err := h.converter.BetweenComposites(whole, fraction, from, to)
	if err != nil {
		return nil, err
	}
	return &CompositeResult{Scheme: to, Composite: c}, nil
}

// parseFields parses the two composite fields. A blank fraction field reads
// as zero; a blank whole field is no value.
func parseFields(wholeText, fractionText string) (float64, float64, error) {
	whole, err := services.ParseNumber(wholeText)
	if err != nil {
		return 0, 0, fmt.Errorf("whole: %w", err)
	}
	if strings.TrimSpace(fractionText) == "" {
		return whole, 0, nil
	}
	fraction, err := services.ParseNumber(fractionText)
	if err != nil {
		return 0, 0, fmt.Errorf("fraction: %w", err)
	}
	return whole, fraction, nil
}
