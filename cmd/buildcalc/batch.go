package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/application/handlers"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

type batchFlags struct {
	format      string
	inputFormat string
	output      string
	number      formatFlags
}

func newBatchCmd() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Convert requests from JSON or CSV files",
		Long: "Reads conversion requests from files matched by glob patterns (** supported) and writes\n" +
			"the results as JSON, CSV, markdown or msgpack. Invalid rows are reported and skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown, msgpack)")
	cmd.Flags().StringVar(&flags.inputFormat, "input-format", "auto", "Input file format (json, csv, auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	flags.number.register(cmd)

	return cmd
}

func runBatch(cmd *cobra.Command, patterns []string, flags batchFlags) error {
	if !lo.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}
	if flags.format == "msgpack" && flags.output == "" {
		return fmt.Errorf("msgpack output requires --output")
	}

	ctx := cmd.Context()

	return withDeps(cmd, func(d *Deps) error {
		result, err := d.BatchHandler.Handle(ctx, patterns, handlers.BatchOptions{
			Format: flags.inputFormat,
			Number: flags.number.options(cmd, d.Config),
		})
		if err != nil {
			return fmt.Errorf("running batch: %w", err)
		}

		if err := writeBatch(cmd.OutOrStdout(), flags.output, flags.format, result.Run); err != nil {
			return err
		}

		if flags.output != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d requests from %d files to %s", len(result.Run.Rows), len(result.Files), flags.output)
			if result.Run.Skipped() > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d skipped", result.Run.Skipped())
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		for _, e := range result.Run.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", e.Error())
		}

		return nil
	})
}

// writeBatch writes the result to the output file, or to stdout when no
// file is given.
func writeBatch(stdout io.Writer, output, format string, result *services.BatchResult) (err error) {
	w := stdout

	if output != "" {
		var f *os.File
		f, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatBatch(w, format, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
