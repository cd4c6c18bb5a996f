// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pichance/phrase"
)

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <digits>...",
		Short: "Turn digit pairs back into letters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, in := range args {
				fmt.Fprintln(a.out, phrase.Decode(in, a.base))
			}

			return nil
		},
	}
}
