// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pichance/absence"
	"github.com/katalvlaran/pichance/automaton"
)

func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Estimate every line of a file (stdin when omitted) in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return a.runBatch(cmd, in)
		},
	}
}

// runBatch reads one input per line; blank lines and lines starting with '#'
// are skipped.
func (a *app) runBatch(cmd *cobra.Command, in io.Reader) error {
	var (
		inputs   []string
		digits   []string
		patterns []automaton.Pattern
	)
	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		d, err := a.pattern(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		p, err := automaton.ParsePattern(d)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, text)
		digits = append(digits, d)
		patterns = append(patterns, p)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	start := time.Now()
	qs, err := absence.EstimateAll(cmd.Context(), patterns, a.cfg.Digits, absence.WithWorkers(a.cfg.Workers))
	if err != nil {
		return err
	}
	a.logger.Info("batch estimated",
		slog.Int("patterns", len(patterns)),
		slog.Int64("digits", a.cfg.Digits),
		slog.Duration("elapsed", time.Since(start)),
	)

	rows := make([]row, len(qs))
	for i, q := range qs {
		rows[i] = row{
			input:   inputs[i],
			pattern: digits[i],
			absent:  formatAbsent(q),
			found:   fmt.Sprintf("%.4f", (1-q)*100),
		}
	}

	return writeRows(a.out, a.cfg.Digits, rows)
}
