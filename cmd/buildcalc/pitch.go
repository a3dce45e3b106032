package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
)

type pitchFlags struct {
	degrees string
	percent string
	rise    string
	format  formatFlags
}

func newPitchCmd() *cobra.Command {
	var flags pitchFlags

	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "Derive roof pitch in degrees, percent and rise per 12",
		Long:  "Takes one pitch representation and derives the other two from it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPitch(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.degrees, "degrees", "", "Pitch angle in degrees")
	cmd.Flags().StringVar(&flags.percent, "percent", "", "Pitch as percent slope")
	cmd.Flags().StringVar(&flags.rise, "rise", "", "Pitch as rise per 12 of run")
	cmd.MarkFlagsMutuallyExclusive("degrees", "percent", "rise")
	cmd.MarkFlagsOneRequired("degrees", "percent", "rise")
	flags.format.register(cmd)

	return cmd
}

func runPitch(cmd *cobra.Command, flags pitchFlags) error {
	source, value := string(entities.PitchDegrees), flags.degrees
	switch {
	case cmd.Flags().Changed("percent"):
		source, value = string(entities.PitchPercent), flags.percent
	case cmd.Flags().Changed("rise"):
		source, value = string(entities.PitchRise), flags.rise
	}

	return withDeps(cmd, func(d *Deps) error {
		set, err := d.PitchHandler.Handle(source, value)
		if err != nil {
			return printResult(cmd, "", err)
		}

		opts := flags.format.options(cmd, d.Config)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "degrees\t%s°\n", services.FormatNumber(set.Degrees, opts))
		fmt.Fprintf(w, "percent\t%s%%\n", services.FormatNumber(set.Percent, opts))
		fmt.Fprintf(w, "rise\t%s:12\n", services.FormatNumber(set.Rise, opts))
		return w.Flush()
	})
}
