package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/application/handlers"
	"github.com/ersonp/buildcalc/internal/domain/entities"
)

type convertFlags struct {
	kind     string
	describe bool
	format   formatFlags
}

func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <value> <from> [to]",
		Short: "Convert a value between units",
		Long: "Converts a value between two units of the same kind. When --kind is omitted the kind is\n" +
			"inferred from the units. When the target unit is omitted the configured display unit is used.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.kind, "kind", "k", "", "Quantity kind (length, area, volume, angle, mass, density)")
	cmd.Flags().BoolVarP(&flags.describe, "describe", "d", false, "Print unit names, e.g. \"12 inches = 1 foot\"")
	flags.format.register(cmd)

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, flags convertFlags) error {
	return withDeps(cmd, func(d *Deps) error {
		to, err := targetUnit(d, args, flags.kind)
		if err != nil {
			return err
		}

		opts := flags.format.options(cmd, d.Config)
		result, err := d.ConvertHandler.Handle(handlers.ConvertRequest{
			Value:  args[0],
			From:   args[1],
			To:     to,
			Kind:   flags.kind,
			Format: opts,
		})
		if err != nil {
			return printResult(cmd, "", err)
		}

		d.Logger.Debug("converted", "kind", result.Kind, "from", result.From.Symbol, "to", result.To.Symbol)

		if flags.describe {
			return printResult(cmd, result.Phrase(opts), nil)
		}
		return printResult(cmd, fmt.Sprintf("%s %s", result.Formatted, result.To.Symbol), nil)
	})
}

// targetUnit returns the explicit target unit, or the configured display
// unit for the source unit's kind.
func targetUnit(d *Deps, args []string, kindName string) (string, error) {
	if len(args) == 3 {
		return args[2], nil
	}

	var kind entities.Kind
	var err error
	if kindName != "" {
		kind, err = entities.ParseKind(kindName)
	} else {
		kind, err = d.ConvertHandler.InferKind(args[1])
	}
	if err != nil {
		return "", err
	}

	to := d.Config.PreferredUnit(kind)
	if to == "" {
		return "", fmt.Errorf("no target unit given and no display unit configured for %s", kind)
	}
	return to, nil
}
