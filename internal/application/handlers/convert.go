package handlers

import (
	"fmt"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

// ConvertHandler turns user-entered text into conversions.
type ConvertHandler struct {
	converter *services.ConversionService
}

// NewConvertHandler creates a new convert handler.
func NewConvertHandler(converter *services.ConversionService) *ConvertHandler {
	return &ConvertHandler{
		converter: converter,
	}
}

// ConvertRequest is a single conversion as typed by the user.
type ConvertRequest struct {
	Value  string
	From   string
	To     string
	Kind   string // Empty means infer from the unit pair
	Format services.FormatOptions
}

// ConvertResult contains the result of a conversion.
type ConvertResult struct {
	Kind      entities.Kind `json:"kind"`
	From      entities.Unit `json:"from"`
	To        entities.Unit `json:"to"`
	Input     float64       `json:"input"`
	Value     float64       `json:"value"`
	Formatted string        `json:"formatted"`
}

// Phrase renders the conversion as "<input> <from> = <value> <to>" with
// spelled-out unit names.
func (r *ConvertResult) Phrase(opts services.FormatOptions) string {
	return fmt.Sprintf("%s = %s",
		services.DescribeQuantity(r.Input, r.From, opts),
		services.DescribeQuantity(r.Value, r.To, opts))
}

// Handle parses the value, resolves the kind and converts.
// Unparseable values return an error matching entities.ErrInvalidNumber.
func (h *ConvertHandler) Handle(req ConvertRequest) (*ConvertResult, error) {
	value, err := services.ParseNumber(req.Value)
	if err != nil {
		return nil, err
	}

	kind, err := h.resolveKind(req.Kind, req.From, req.To)
	if err != nil {
		return nil, err
	}

	from, err := h.converter.Lookup(kind, req.From)
	if err != nil {
		return nil, err
	}
	to, err := h.converter.Lookup(kind, req.To)
	if err != nil {
		return nil, err
	}

	converted, err := h.converter.ConvertUnits(value, from, to)
	if err != nil {
		return nil, fmt.Errorf("converting %s to %s: %w", from.Symbol, to.Symbol, err)
	}

	return &ConvertResult{
		Kind:      kind,
		From:      from,
		To:        to,
		Input:     value,
		Value:     converted,
		Formatted: services.FormatNumber(converted, req.Format),
	}, nil
}

// HandleFormat parses and formats a bare number.
func (h *ConvertHandler) HandleFormat(text string, opts services.FormatOptions) (string, error) {
	value, err := services.ParseNumber(text)
	if err != nil {
		return "", err
	}
	return services.FormatNumber(value, opts), nil
}

// HandleUnits returns the units of one kind, or of every kind when kindName
// is empty, in table order.
func (h *ConvertHandler) HandleUnits(kindName string) ([]entities.Unit, error) {
	if kindName == "" {
		var all []entities.Unit
		for _, kind := range entities.Kinds() {
			all = append(all, h.converter.Units(kind)...)
		}
		return all, nil
	}

	kind, err := entities.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	return h.converter.Units(kind), nil
}

// InferKind returns the single kind that recognizes symbol.
func (h *ConvertHandler) InferKind(symbol string) (entities.Kind, error) {
	return h.converter.InferKind(symbol, symbol)
}

func (h *ConvertHandler) resolveKind(kindName, from, to string) (entities.Kind, error) {
	if kindName == "" {
		return h.converter.InferKind(from, to)
	}
	return entities.ParseKind(kindName)
}
