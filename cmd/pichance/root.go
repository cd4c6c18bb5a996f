// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pichance/cmd/pichance/config"
	"github.com/katalvlaran/pichance/phrase"
)

// app carries the resolved configuration into every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg    config.Config
	mode   phrase.Mode
	base   phrase.Base
	logger *slog.Logger

	// flag targets; applied over cfg only when set on the command line
	configPath string
	digits     int64
	modeFlag   string
	baseFlag   int
	workers    int
	logLevel   string
	maxInput   int
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "pichance",
		Short:         "Estimate the chance a phrase appears in N random digits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.Int64Var(&a.digits, "digits", config.DefaultDigits, "number of digits N searched")
	pf.StringVar(&a.modeFlag, "mode", config.DefaultMode, "input mode: digits or letters")
	pf.IntVar(&a.baseFlag, "base", config.DefaultBase, "letter base: 0 (A=00) or 1 (A=01)")
	pf.IntVar(&a.workers, "workers", config.DefaultWorkers, "batch workers (0 = GOMAXPROCS)")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	pf.IntVar(&a.maxInput, "max-input", config.DefaultMaxInput, "truncate input to this many characters (0 = no limit)")

	root.AddCommand(
		a.newEstimateCmd(),
		a.newBatchCmd(),
		a.newAutomatonCmd(),
		a.newDecodeCmd(),
	)

	return root
}

// setup resolves configuration: file, then environment, then flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, nil)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("digits") {
		cfg.Digits = a.digits
	}
	if flags.Changed("mode") {
		cfg.Mode = a.modeFlag
	}
	if flags.Changed("base") {
		cfg.LetterBase = a.baseFlag
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("max-input") {
		cfg.MaxInput = a.maxInput
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.mode, err = cfg.PhraseMode(); err != nil {
		return err
	}
	if a.base, err = cfg.PhraseBase(); err != nil {
		return err
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	a.cfg = cfg

	a.logger.Debug("config resolved",
		slog.String("config", a.configPath),
		slog.Int64("digits", cfg.Digits),
		slog.String("mode", cfg.Mode),
		slog.Int("letter_base", cfg.LetterBase),
		slog.Int("workers", cfg.Workers),
	)

	return nil
}

// pattern converts one raw argument into a digit pattern under the configured
// mode, base and input limit.
func (a *app) pattern(input string) (string, error) {
	return phrase.Pattern(input, a.mode, a.base, a.cfg.MaxInput)
}
