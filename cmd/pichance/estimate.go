// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pichance/absence"
	"github.com/katalvlaran/pichance/automaton"
)

// exactDecimals is the number of decimals printed for rational results.
const exactDecimals = 12

// row is one line of estimate/batch output.
type row struct {
	input   string
	pattern string
	absent  string
	found   string
}

func (a *app) newEstimateCmd() *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "estimate <input>...",
		Short: "Estimate the chance each input appears in the first N digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]row, 0, len(args))
			for _, in := range args {
				r, err := a.estimateOne(cmd.Context(), in, exact)
				if err != nil {
					return err
				}
				rows = append(rows, r)
			}

			return writeRows(a.out, a.cfg.Digits, rows)
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "use exact rational arithmetic (N <= 4096)")

	return cmd
}

func (a *app) estimateOne(ctx context.Context, input string, exact bool) (row, error) {
	digits, err := a.pattern(input)
	if err != nil {
		return row{}, err
	}
	p, err := automaton.ParsePattern(digits)
	if err != nil {
		return row{}, err
	}

	start := time.Now()
	r := row{input: input, pattern: digits}
	if exact {
		q, err := absence.ExactNotFoundProbability(ctx, p, a.cfg.Digits)
		if err != nil {
			return row{}, err
		}
		found := new(big.Rat).Sub(big.NewRat(1, 1), q)
		found.Mul(found, big.NewRat(100, 1))
		r.absent, r.found = q.FloatString(exactDecimals), found.FloatString(4)
	} else {
		q, err := absence.NotFoundProbability(p, a.cfg.Digits)
		if err != nil {
			return row{}, err
		}
		r.absent, r.found = formatAbsent(q), fmt.Sprintf("%.4f", (1-q)*100)
	}

	a.logger.Debug("estimated",
		slog.Int("pattern_len", p.Len()),
		slog.Int64("digits", a.cfg.Digits),
		slog.Bool("exact", exact),
		slog.Duration("elapsed", time.Since(start)),
	)

	return r, nil
}

func formatAbsent(q float64) string { return fmt.Sprintf("%.10g", q) }

// writeRows prints rows as an aligned table.
func writeRows(w io.Writer, n int64, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "INPUT\tPATTERN\tN\tP(ABSENT)\tFOUND %%\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.input, r.pattern, n, r.absent, r.found)
	}

	return tw.Flush()
}
