package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type compositeFlags struct {
	scheme string
	format formatFlags
}

func newCompositeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "composite",
		Short: "Work with two-field lengths (ft-in, m-cm)",
		Long:  "Splits lengths into whole major units plus minor units, and converts them back.",
	}

	cmd.AddCommand(newCompositeToCmd())
	cmd.AddCommand(newCompositeFromCmd())
	cmd.AddCommand(newCompositeBetweenCmd())

	return cmd
}

func newCompositeToCmd() *cobra.Command {
	var flags compositeFlags

	cmd := &cobra.Command{
		Use:   "to <value> <from>",
		Short: "Split a length into a composite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(d *Deps) error {
				result, err := d.CompositeHandler.HandleTo(args[0], args[1], schemeOrDefault(flags.scheme, d))
				if err != nil {
					return printResult(cmd, "", err)
				}
				return printResult(cmd, result.Display(flags.format.options(cmd, d.Config)), nil)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.scheme, "scheme", "s", "", "Composite scheme (ft-in, m-cm; default from config)")
	flags.format.register(cmd)

	return cmd
}

func newCompositeFromCmd() *cobra.Command {
	var flags compositeFlags

	cmd := &cobra.Command{
		Use:   "from <whole> <fraction> <to>",
		Short: "Flatten a composite into a single unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(d *Deps) error {
				opts := flags.format.options(cmd, d.Config)
				result, err := d.CompositeHandler.HandleFrom(args[0], args[1], schemeOrDefault(flags.scheme, d), args[2], opts)
				if err != nil {
					return printResult(cmd, "", err)
				}
				return printResult(cmd, fmt.Sprintf("%s %s", result.Formatted, result.To.Symbol), nil)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.scheme, "scheme", "s", "", "Composite scheme (ft-in, m-cm; default from config)")
	flags.format.register(cmd)

	return cmd
}

func newCompositeBetweenCmd() *cobra.Command {
	var flags compositeFlags

	cmd := &cobra.Command{
		Use:   "between <whole> <fraction> <from-scheme> <to-scheme>",
		Short: "Switch a composite to another scheme",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(d *Deps) error {
				result, err := d.CompositeHandler.HandleBetween(args[0], args[1], args[2], args[3])
				if err != nil {
					return printResult(cmd, "", err)
				}
				return printResult(cmd, result.Display(flags.format.options(cmd, d.Config)), nil)
			})
		},
	}

	flags.format.register(cmd)

	return cmd
}

func schemeOrDefault(scheme string, d *Deps) string {
	if scheme != "" {
		return scheme
	}
	return string(d.Config.CompositeKind())
}
