package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/scottkirkwood/lgart/config"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named parameter presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODE\tDEPTH\tANGLE\tLENGTH\tRULE")
		for _, name := range config.ListPresets() {
			p, _ := config.GetPreset(name)
			rule := "-"
			if p.Mode == config.LSystem {
				rule = p.Rule
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\t%s\n", name, p.Mode, p.Depth, p.Angle, p.Length, rule)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
