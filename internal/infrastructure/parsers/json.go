package parsers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses requests from a JSON array.
type JSONParser struct{}

// jsonRequest accepts value as either a JSON number or a string.
type jsonRequest struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Value     json.RawMessage `json:"value"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Composite string          `json:"composite"`
}

// Parse reads JSON from the reader and returns parsed requests.
func (p *JSONParser) Parse(r io.Reader) ([]RawRequest, error) {
	var raw []jsonRequest

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	requests := make([]RawRequest, len(raw))
	for i, req := range raw {
		requests[i] = RawRequest{
			ID:        req.ID,
			Kind:      req.Kind,
			Value:     valueText(req.Value),
			From:      req.From,
			To:        req.To,
			Composite: req.Composite,
			LineNum:   i + 1, // array index, 1-indexed
		}
	}

	return requests, nil
}

// valueText returns the literal text of a number, the content of a string,
// and "" for null or a missing value.
func valueText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	return string(trimmed)
}
