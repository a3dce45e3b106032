package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long:  "Creates a .buildcalc directory with a default config.yaml.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	basePath, err := configBasePath()
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler().Handle(basePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.ConfigPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Composite scheme: %s, max fraction digits: %d\n",
		result.Config.CompositeKind(), result.Config.Format.MaxFractionDigits)

	return nil
}
