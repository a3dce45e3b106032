// Package parsers provides parsers for batch conversion request files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawRequest is one conversion request as read from a file, before
// validation. Value is kept as text so that empty or malformed input can be
// reported instead of silently becoming zero.
type RawRequest struct {
	ID         string `json:"id,omitempty"`
	Kind       string `json:"kind"`
	Value      string `json:"value"`
	From       string `json:"from"`
	To         string `json:"to"`
	Composite  string `json:"composite,omitempty"`
	SourceFile string `json:"-"` // Set by the batch handler
	LineNum    int    `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing requests from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRequest, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
