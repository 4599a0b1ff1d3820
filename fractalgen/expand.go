package main

import (
	"fmt"

	"github.com/scottkirkwood/lgart/lsystem"
	"github.com/spf13/cobra"
)

var countOnly bool

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Print the L-system sequence for the given axiom, rule and depth",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		seq, err := lsystem.Expand(p.Axiom, p.Replacement(), p.Depth)
		if err != nil {
			return err
		}
		// catch bad brackets here rather than at draw time
		if err := lsystem.Walk(seq, lsystem.Turtle{}, 1, p.Angle, func(lsystem.Move) {}); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if countOnly {
			fmt.Fprintf(out, "symbols: %d\nsteps: %d\n", len(seq), lsystem.Count(seq, 'F'))
			return nil
		}
		fmt.Fprintln(out, seq)
		return nil
	},
}

func init() {
	expandCmd.Flags().BoolVar(&countOnly, "count", false, "only print the sequence size")
	addParamFlags(expandCmd)
	rootCmd.AddCommand(expandCmd)
}
