// Package main provides the entry point for the buildcalc CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version         = "0.1.0-dev"
	globalConfigDir string
	globalVerbose   bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "buildcalc",
		Short:         "Unit conversion and number formatting for construction estimates",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globalConfigDir, "config-dir", "", "Directory containing .buildcalc/ (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newConvertCmd(),
		newCompositeCmd(),
		newFormatCmd(),
		newUnitsCmd(),
		newKindsCmd(),
		newPitchCmd(),
		newBatchCmd(),
		newInitCmd(),
	)

	return rootCmd
}
