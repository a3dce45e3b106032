package main

import (
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Format a number for display",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(d *Deps) error {
				formatted, err := d.ConvertHandler.HandleFormat(args[0], flags.options(cmd, d.Config))
				return printResult(cmd, formatted, err)
			})
		},
	}

	flags.register(cmd)

	return cmd
}
