package handlers

import (
	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

// PitchHandler handles roof pitch entry.
type PitchHandler struct {
	pitch *services.PitchService
}

// NewPitchHandler creates a new pitch handler.
func NewPitchHandler(pitch *services.PitchService) *PitchHandler {
	return &PitchHandler{
		pitch: pitch,
	}
}

// Handle treats the named representation as the field the user edited and
// derives the other two from it.
func (h *PitchHandler) Handle(source, valueText string) (*entities.PitchSet, error) {
	ps, err := entities.ParsePitchSource(source)
	if err != nil {
		return nil, err
	}
	value, err := services.ParseNumber(valueText)
	if err != nil {
		return nil, err
	}

	p, err := h.pitch.With(ps, value)
	if err != nil {
		return nil, err
	}
	set, err := h.pitch.Derive(p)
	if err != nil {
		return nil, err
	}
	return &set, nil
}
