package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

func testBatchResult() *services.BatchResult {
	return &services.BatchResult{
		RunID: "run-1",
		Rows: []services.BatchRow{
			{
				ID:         "row-1",
				SourceFile: "site.csv",
				Line:       2,
				Kind:       "length",
				Input:      66,
				From:       "in",
				To:         "ft",
				Value:      5.5,
				Formatted:  "5.5",
				Composite:  "ft-in",
				Split:      &entities.Composite{Whole: 5, Fraction: 6},
			},
		},
		Errors: []services.BatchError{
			{SourceFile: "site.csv", Line: 3, Field: "value", Message: "no value"},
		},
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, testBatchResult())
	require.NoError(t, err)

	// Verify it's valid JSON
	var parsed map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	assert.Equal(t, "run-1", parsed["run_id"])
	rows := parsed["rows"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "row-1", row["id"])
	assert.Equal(t, 5.5, row["value"])
	assert.Equal(t, "5.5", row["formatted"])
	split := row["split"].(map[string]interface{})
	assert.Equal(t, 5.0, split["whole"])

	errs := parsed["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "no value", errs[0].(map[string]interface{})["message"])
}

func TestFormatJSON_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, &services.BatchResult{RunID: "run-2", Rows: []services.BatchRow{}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"rows": []`)
	assert.NotContains(t, buf.String(), "errors")
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	err := formatCSV(&buf, testBatchResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,source_file,line,kind,input,from,to,value,formatted,composite,whole,fraction", lines[0])
	assert.Equal(t, "row-1,site.csv,2,length,66,in,ft,5.5,5.5,ft-in,5,6", lines[1])
}

func TestFormatCSV_QuotesGroupedNumbers(t *testing.T) {
	result := &services.BatchResult{Rows: []services.BatchRow{{ID: "r", Kind: "area", Input: 1, From: "ac", To: "ft²", Value: 43560, Formatted: "43,560"}}}

	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, result))
	assert.Contains(t, buf.String(), `"43,560"`)
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := formatMarkdown(&buf, testBatchResult())
	require.NoError(t, err)

	result := buf.String()
	assert.Contains(t, result, "# Batch Conversion")
	assert.Contains(t, result, "Run: run-1")
	assert.Contains(t, result, "Converted: 1, skipped: 1")
	assert.Contains(t, result, "| row-1 | 66 | in | 5.5 | ft | ft-in: 5 6 |")
	assert.Contains(t, result, "## Skipped")
	assert.Contains(t, result, "- site.csv: line 3: no value (value)")
}

func TestFormatMarkdown_NoErrors(t *testing.T) {
	result := testBatchResult()
	result.Errors = nil

	var buf bytes.Buffer
	require.NoError(t, formatMarkdown(&buf, result))
	assert.NotContains(t, buf.String(), "## Skipped")
}

func TestFormatMsgpack(t *testing.T) {
	var buf bytes.Buffer
	err := formatMsgpack(&buf, testBatchResult())
	require.NoError(t, err)

	var decoded services.BatchResult
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, 5.5, decoded.Rows[0].Value)
	require.NotNil(t, decoded.Rows[0].Split)
	assert.Equal(t, 6.0, decoded.Rows[0].Split.Fraction)
	require.Len(t, decoded.Errors, 1)
	assert.Equal(t, 3, decoded.Errors[0].Line)
}

func TestFormatBatch_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := formatBatch(&buf, "xml", testBatchResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"normal text", "normal text"},
		{"has|pipe", "has\\|pipe"},
		{"has\nnewline", "has newline"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeMarkdown(tt.input))
		})
	}
}
