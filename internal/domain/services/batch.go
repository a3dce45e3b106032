package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/infrastructure/parsers"
)

// BatchOptions controls a batch run.
type BatchOptions struct {
	Format FormatOptions
}

// BatchError represents an error for a specific request during a batch run.
type BatchError struct {
	SourceFile string `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	Line       int    `json:"line" msgpack:"line"`       // Line number (1-indexed, 0 if unknown)
	Field      string `json:"field" msgpack:"field"`     // Which field has the error
	Value      string `json:"value" msgpack:"value"`     // The invalid value
	Message    string `json:"message" msgpack:"message"` // Human-readable error message
}

func (e BatchError) Error() string {
	prefix := ""
	if e.SourceFile != "" {
		prefix = e.SourceFile + ": "
	}
	if e.Line > 0 {
		return fmt.Sprintf("%sline %d: %s", prefix, e.Line, e.Message)
	}
	return prefix + e.Message
}

// BatchRow is one successful conversion.
type BatchRow struct {
	ID         string              `json:"id" msgpack:"id"`
	SourceFile string              `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
	Line       int                 `json:"line" msgpack:"line"`
	Kind       string              `json:"kind" msgpack:"kind"`
	Input      float64             `json:"input" msgpack:"input"`
	From       string              `json:"from" msgpack:"from"`
	To         string              `json:"to" msgpack:"to"`
	Value      float64             `json:"value" msgpack:"value"`
	Formatted  string              `json:"formatted" msgpack:"formatted"`
	Composite  string              `json:"composite,omitempty" msgpack:"composite,omitempty"`
	Split      *entities.Composite `json:"split,omitempty" msgpack:"split,omitempty"`
}

// BatchResult contains the result of a batch run.
type BatchResult struct {
	RunID  string       `json:"run_id" msgpack:"run_id"`
	Rows   []BatchRow   `json:"rows" msgpack:"rows"`
	Errors []BatchError `json:"errors,omitempty" msgpack:"errors,omitempty"`
}

// Skipped returns the number of requests that produced no result.
func (r *BatchResult) Skipped() int {
	return len(r.Errors)
}

// BatchService converts many requests in one run.
type BatchService struct {
	converter *ConversionService
}

// NewBatchService creates a new batch service.
func NewBatchService(converter *ConversionService) *BatchService {
	return &BatchService{
		converter: converter,
	}
}

// Run validates and converts every request in order. Invalid requests are
// reported in Errors and skipped; they never abort the run.
func (s *BatchService) Run(ctx context.Context, requests []parsers.RawRequest, opts BatchOptions) (*BatchResult, error) {
	result := &BatchResult{
		RunID: uuid.NewString(),
		Rows:  make([]BatchRow, 0, len(requests)),
	}

	for i := range requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch cancelled after %d of %d requests: %w", i, len(requests), err)
		}

		row, batchErr := s.convertRequest(requests[i], opts)
		if batchErr != nil {
			result.Errors = append(result.Errors, *batchErr)
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func (s *BatchService) convertRequest(req parsers.RawRequest, opts BatchOptions) (BatchRow, *BatchError) {
	fail := func(field, value, message string) *BatchError {
		return &BatchError{
			SourceFile: req.SourceFile,
			Line:       req.LineNum,
			Field:      field,
			Value:      value,
			Message:    message,
		}
	}

	input, err := ParseNumber(req.Value)
	if err != nil {
		if strings.TrimSpace(req.Value) == "" {
			return BatchRow{}, fail("value", req.Value, "no value")
		}
		return BatchRow{}, fail("value", req.Value, fmt.Sprintf("invalid number %q", req.Value))
	}

	kind, err := s.resolveKind(req)
	if err != nil {
		return BatchRow{}, fail("kind", req.Kind, err.Error())
	}

	fromUnit, err := s.converter.Lookup(kind, req.From)
	if err != nil {
		return BatchRow{}, fail("from", req.From, err.Error())
	}
	toUnit, err := s.converter.Lookup(kind, req.To)
	if err != nil {
		return BatchRow{}, fail("to", req.To, err.Error())
	}

	value, err := s.converter.ConvertUnits(input, fromUnit, toUnit)
	if err != nil {
		return BatchRow{}, fail("value", req.Value, err.Error())
	}

	row := BatchRow{
		ID:         req.ID,
		SourceFile: req.SourceFile,
		Line:       req.LineNum,
		Kind:       kind.String(),
		Input:      input,
		From:       fromUnit.Symbol,
		To:         toUnit.Symbol,
		Value:      value,
		Formatted:  FormatNumber(value, opts.Format),
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	if req.Composite != "" {
		split, err := s.split(input, fromUnit, kind, req.Composite)
		if err != nil {
			return BatchRow{}, fail("composite", req.Composite, err.Error())
		}
		row.Composite = req.Composite
		row.Split = &split
	}

	return row, nil
}

func (s *BatchService) resolveKind(req parsers.RawRequest) (entities.Kind, error) {
	if strings.TrimSpace(req.Kind) == "" {
		return s.converter.InferKind(req.From, req.To)
	}
	return entities.ParseKind(req.Kind)
}

func (s *BatchService) split(input float64, from entities.Unit, kind entities.Kind, scheme string) (entities.Composite, error) {
	if kind != entities.KindLength {
		return entities.Composite{}, errors.New("composite schemes apply to lengths only")
	}
	ck, err := entities.ParseCompositeKind(scheme)
	if err != nil {
		return entities.Composite{}, err
	}
	return s.converter.ToComposite(input, from.Symbol, ck)
}
