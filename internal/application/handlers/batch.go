package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/lo"

	"github.com/ersonp/buildcalc/internal/domain/services"
	"github.com/ersonp/buildcalc/internal/infrastructure/parsers"
)

// BatchHandler converts request files matched by glob patterns.
type BatchHandler struct {
	service *services.BatchService
	logger  *slog.Logger
}

// NewBatchHandler creates a new batch handler. A nil logger discards output.
func NewBatchHandler(service *services.BatchService, logger *slog.Logger) *BatchHandler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BatchHandler{
		service: service,
		logger:  logger,
	}
}

// BatchOptions controls batch behavior.
type BatchOptions struct {
	Format string                 // "json", "csv", or "auto"
	Number services.FormatOptions // Formatting for converted values
}

// BatchResult contains the files read and the conversion run over them.
type BatchResult struct {
	Files []string
	Run   *services.BatchResult
}

// Handle expands the patterns, parses every matched file and converts all
// requests in one run. Row-level problems are reported in Run.Errors;
// unreadable or unparseable files fail the whole batch.
func (h *BatchHandler) Handle(ctx context.Context, patterns []string, opts BatchOptions) (*BatchResult, error) {
	files, err := h.expand(patterns)
	if err != nil {
		return nil, err
	}

	var requests []parsers.RawRequest
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parsed, err := h.parseFile(file, opts.Format)
		if err != nil {
			return nil, err
		}
		h.logger.Debug("parsed batch file", "file", file, "requests", len(parsed))
		requests = append(requests, parsed...)
	}

	run, err := h.service.Run(ctx, requests, services.BatchOptions{Format: opts.Number})
	if err != nil {
		return nil, err
	}

	for _, e := range run.Errors {
		h.logger.Debug("skipped request", "file", e.SourceFile, "line", e.Line, "field", e.Field, "error", e.Message)
	}
	h.logger.Info("batch complete", "run_id", run.RunID, "files", len(files), "converted", len(run.Rows), "skipped", run.Skipped())

	return &BatchResult{
		Files: files,
		Run:   run,
	}, nil
}

// expand resolves every pattern to files, keeping first-seen order.
// A pattern that matches nothing is an error.
func (h *BatchHandler) expand(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		matches = lo.Filter(matches, func(path string, _ int) bool {
			info, err := os.Stat(path)
			return err == nil && !info.IsDir()
		})
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		h.logger.Debug("expanded pattern", "pattern", pattern, "matches", len(matches))
		files = append(files, matches...)
	}
	return lo.Uniq(files), nil
}

func (h *BatchHandler) parseFile(path, format string) ([]parsers.RawRequest, error) {
	var parser parsers.Parser
	if format == "" || format == "auto" {
		parser = parsers.ForFile(path)
	} else {
		parser = parsers.ForFormat(format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	requests, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i := range requests {
		requests[i].SourceFile = path
	}
	return requests, nil
}
