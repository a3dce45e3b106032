package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser parses requests from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed requests.
// Expected columns: kind, value, from, to, and optionally id, composite.
func (p *CSVParser) Parse(r io.Reader) ([]RawRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	requiredCols := []string{"kind", "value", "from", "to"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawRequests.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawRequest, error) {
	reader.FieldsPerRecord = -1

	var requests []RawRequest
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		requests = append(requests, RawRequest{
			ID:        getColumn(record, colIndex, "id"),
			Kind:      getColumn(record, colIndex, "kind"),
			Value:     getColumn(record, colIndex, "value"),
			From:      getColumn(record, colIndex, "from"),
			To:        getColumn(record, colIndex, "to"),
			Composite: getColumn(record, colIndex, "composite"),
			LineNum:   lineNum,
		})
	}

	return requests, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
