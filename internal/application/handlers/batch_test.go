package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/buildcalc/internal/domain/services"
)

func newTestBatchHandler() *BatchHandler {
	return NewBatchHandler(services.NewBatchService(newTestConverter()), nil)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestBatchHandler_Handle_GlobAcrossFormats(t *testing.T) {
	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "site.csv")
	jsonFile := filepath.Join(tmpDir, "loads", "slab.json")
	writeFile(t, csvFile, "kind,value,from,to\nlength,12,in,ft\nlength,,m,cm\n")
	writeFile(t, jsonFile, `[{"id": "w1", "kind": "mass", "value": 1, "from": "kg", "to": "g"}]`)

	handler := newTestBatchHandler()
	result, err := handler.Handle(context.Background(), []string{filepath.Join(tmpDir, "**", "*.{csv,json}")}, BatchOptions{
		Number: services.DefaultFormatOptions(),
	})

	require.NoError(t, err)
	assert.Len(t, result.Files, 2)
	require.Len(t, result.Run.Rows, 2)
	require.Len(t, result.Run.Errors, 1)

	e := result.Run.Errors[0]
	assert.Equal(t, csvFile, e.SourceFile)
	assert.Equal(t, 3, e.Line)
	assert.Equal(t, "value", e.Field)
	assert.Equal(t, "no value", e.Message)

	var slab services.BatchRow
	for _, row := range result.Run.Rows {
		if row.ID == "w1" {
			slab = row
		}
	}
	assert.Equal(t, jsonFile, slab.SourceFile)
	assert.Equal(t, "1,000", slab.Formatted)
}

func TestBatchHandler_Handle_DeduplicatesOverlappingPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "a.csv")
	writeFile(t, csvFile, "kind,value,from,to\nlength,1,m,cm\n")

	handler := newTestBatchHandler()
	result, err := handler.Handle(context.Background(), []string{csvFile, filepath.Join(tmpDir, "*.csv")}, BatchOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{csvFile}, result.Files)
	assert.Len(t, result.Run.Rows, 1)
}

func TestBatchHandler_Handle_ExplicitFormat(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "requests.txt")
	writeFile(t, file, "kind,value,from,to\nvolume,27,cu ft,cu yd\n")

	handler := newTestBatchHandler()
	result, err := handler.Handle(context.Background(), []string{file}, BatchOptions{Format: "csv"})

	require.NoError(t, err)
	require.Len(t, result.Run.Rows, 1)
	assert.InDelta(t, 1.0, result.Run.Rows[0].Value, 1e-12)
}

func TestBatchHandler_Handle_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	txtFile := filepath.Join(tmpDir, "notes.txt")
	badJSON := filepath.Join(tmpDir, "bad.json")
	writeFile(t, txtFile, "hello")
	writeFile(t, badJSON, "{not json")

	tests := []struct {
		name     string
		patterns []string
		wantErr  string
	}{
		{"no patterns", nil, "no input files"},
		{"no matches", []string{filepath.Join(tmpDir, "*.csv")}, "no files match"},
		{"unsupported extension", []string{txtFile}, "unsupported format"},
		{"malformed file", []string{badJSON}, "parsing"},
	}

	handler := newTestBatchHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.patterns, BatchOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBatchHandler_Handle_Cancelled(t *testing.T) {
	tmpDir := t.TempDir()
	csvFile := filepath.Join(tmpDir, "a.csv")
	writeFile(t, csvFile, "kind,value,from,to\nlength,1,m,cm\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handler := newTestBatchHandler()
	_, err := handler.Handle(ctx, []string{csvFile}, BatchOptions{})

	assert.ErrorIs(t, err, context.Canceled)
}
