package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/domain/entities"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [kind]",
		Short: "List recognized units",
		Long:  "Lists unit symbols, names and factors to the base unit, for one kind or all of them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName := ""
			if len(args) == 1 {
				kindName = args[0]
			}
			return runUnits(cmd, kindName)
		},
	}
}

func runUnits(cmd *cobra.Command, kindName string) error {
	return withDeps(cmd, func(d *Deps) error {
		units, err := d.ConvertHandler.HandleUnits(kindName)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tSYMBOL\tNAME\tTO BASE")
		for _, u := range units {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Kind, u.Symbol, u.Name, strconv.FormatFloat(u.ToBase, 'g', -1, 64))
		}
		return w.Flush()
	})
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List quantity kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(cmd)
		},
	}
}

func runKinds(cmd *cobra.Command) error {
	return withDeps(cmd, func(d *Deps) error {
		units, err := d.ConvertHandler.HandleUnits("")
		if err != nil {
			return err
		}
		byKind := lo.GroupBy(units, func(u entities.Unit) entities.Kind { return u.Kind })

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tBASE\tUNITS\tDISPLAY")
		for _, kind := range entities.Kinds() {
			base, _ := lo.Find(byKind[kind], func(u entities.Unit) bool { return u.ToBase == 1 })
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", kind, base.Symbol, len(byKind[kind]), d.Config.PreferredUnit(kind))
		}
		return w.Flush()
	})
}
