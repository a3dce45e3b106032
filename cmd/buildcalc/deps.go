package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/application/handlers"
	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
	"github.com/ersonp/buildcalc/internal/domain/tables"
	"github.com/ersonp/buildcalc/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and tables are internal.
type Deps struct {
	Config           *config.Config
	Logger           *slog.Logger
	ConvertHandler   *handlers.ConvertHandler
	CompositeHandler *handlers.CompositeHandler
	PitchHandler     *handlers.PitchHandler
	BatchHandler     *handlers.BatchHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
func withDeps(cmd *cobra.Command, fn func(*Deps) error) error {
	basePath, err := configBasePath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), globalVerbose)
	logger.Debug("loaded config", "path", config.ConfigFilePath(basePath), "exists", config.Exists(basePath))

	converter := services.NewConversionService(tables.Default())
	pitchService := services.NewPitchService(converter)
	batchService := services.NewBatchService(converter)

	return fn(&Deps{
		Config:           cfg,
		Logger:           logger,
		ConvertHandler:   handlers.NewConvertHandler(converter),
		CompositeHandler: handlers.NewCompositeHandler(converter),
		PitchHandler:     handlers.NewPitchHandler(pitchService),
		BatchHandler:     handlers.NewBatchHandler(batchService, logger),
	})
}

// configBasePath returns --config-dir, or the current directory.
func configBasePath() (string, error) {
	if globalConfigDir != "" {
		return globalConfigDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// printResult writes a result line, or "no value" when the input was not a
// usable number. Other errors are returned.
func printResult(cmd *cobra.Command, line string, err error) error {
	if errors.Is(err, entities.ErrInvalidNumber) {
		fmt.Fprintln(cmd.OutOrStdout(), noValue)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

// formatFlags are the number formatting flags shared by several commands.
// Flags left unset fall back to the config file.
type formatFlags struct {
	maxDigits int
	minDigits int
	noCommas  bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxDigits, "max-digits", 4, "Maximum fraction digits")
	cmd.Flags().IntVar(&f.minDigits, "min-digits", 0, "Minimum fraction digits")
	cmd.Flags().BoolVar(&f.noCommas, "no-commas", false, "Disable thousands separators (adaptive precision)")
}

func (f *formatFlags) options(cmd *cobra.Command, cfg *config.Config) services.FormatOptions {
	opts := services.FormatOptions{
		MaximumFractionDigits: cfg.Format.MaxFractionDigits,
		MinimumFractionDigits: cfg.Format.MinFractionDigits,
		UseCommas:             cfg.Format.UseCommas,
	}
	if cmd.Flags().Changed("max-digits") {
		opts.MaximumFractionDigits = f.maxDigits
	}
	if cmd.Flags().Changed("min-digits") {
		opts.MinimumFractionDigits = f.minDigits
	}
	if cmd.Flags().Changed("no-commas") {
		opts.UseCommas = !f.noCommas
	}
	return opts
}
