// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pichance/automaton"
)

func (a *app) newAutomatonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "automaton <input>",
		Short: "Print the failure function and transition table of an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := a.pattern(args[0])
			if err != nil {
				return err
			}
			p, err := automaton.ParsePattern(digits)
			if err != nil {
				return err
			}
			au, err := automaton.Build(p)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "pattern: %s\n", p)
			fmt.Fprintf(a.out, "failure: %v\n", au.Failure())

			tw := tabwriter.NewWriter(a.out, 0, 4, 1, ' ', tabwriter.AlignRight)
			fmt.Fprint(tw, "state\t")
			for d := 0; d < automaton.Alphabet; d++ {
				fmt.Fprintf(tw, "%d\t", d)
			}
			fmt.Fprintln(tw)
			for s, next := range au.Table() {
				fmt.Fprintf(tw, "%d\t", s)
				for _, t := range next {
					fmt.Fprintf(tw, "%d\t", t)
				}
				fmt.Fprintln(tw)
			}

			return tw.Flush()
		},
	}
}
