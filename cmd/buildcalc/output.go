package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ersonp/buildcalc/internal/domain/services"
)

func formatBatch(w io.Writer, format string, result *services.BatchResult) error {
	switch format {
	case "json":
		return formatJSON(w, result)
	case "csv":
		return formatCSV(w, result)
	case "markdown":
		return formatMarkdown(w, result)
	case "msgpack":
		return formatMsgpack(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatJSON(w io.Writer, result *services.BatchResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func formatMsgpack(w io.Writer, result *services.BatchResult) error {
	return msgpack.NewEncoder(w).Encode(result)
}

func formatCSV(w io.Writer, result *services.BatchResult) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "source_file", "line", "kind", "input", "from", "to", "value", "formatted", "composite", "whole", "fraction"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range result.Rows {
		whole, fraction := "", ""
		if r.Split != nil {
			whole = formatFloat(r.Split.Whole)
			fraction = formatFloat(r.Split.Fraction)
		}
		row := []string{
			r.ID,
			r.SourceFile,
			strconv.Itoa(r.Line),
			r.Kind,
			formatFloat(r.Input),
			r.From,
			r.To,
			formatFloat(r.Value),
			r.Formatted,
			r.Composite,
			whole,
			fraction,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, result *services.BatchResult) error {
	if _, err := fmt.Fprintf(w, "# Batch Conversion\n\nRun: %s\n\nConverted: %d, skipped: %d\n\n",
		result.RunID, len(result.Rows), result.Skipped()); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| ID | Input | From | Result | To | Composite |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|----|-------|------|--------|----|-----------|\n"); err != nil {
		return err
	}

	for _, r := range result.Rows {
		composite := ""
		if r.Split != nil {
			composite = fmt.Sprintf("%s: %s %s", r.Composite, formatFloat(r.Split.Whole), formatFloat(r.Split.Fraction))
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			escapeMarkdown(r.ID),
			formatFloat(r.Input),
			escapeMarkdown(r.From),
			r.Formatted,
			escapeMarkdown(r.To),
			escapeMarkdown(composite),
		); err != nil {
			return err
		}
	}

	if len(result.Errors) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "\n## Skipped\n\n"); err != nil {
		return err
	}
	for _, e := range result.Errors {
		if _, err := fmt.Fprintf(w, "- %s (%s)\n", escapeMarkdown(e.Error()), e.Field); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
