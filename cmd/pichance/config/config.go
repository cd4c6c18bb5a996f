// SPDX-License-Identifier: MIT

// Package config loads pichance settings from an optional YAML file and
// PICHANCE_* environment variables, then validates them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pichance/phrase"
)

// EnvPrefix prefixes every environment override, e.g. PICHANCE_DIGITS.
const EnvPrefix = "PICHANCE_"

// Defaults.
const (
	DefaultDigits   int64 = 10_000_000_000
	DefaultMode           = string(phrase.Letters)
	DefaultBase           = int(phrase.ZeroBased)
	DefaultMaxInput       = 20
	DefaultWorkers        = 0
	DefaultLogLevel       = "info"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the knobs shared by every command.
type Config struct {
	// Digits is N, the length of the digit sequence searched.
	Digits int64 `yaml:"digits" env:"DIGITS" validate:"gte=0"`
	// Mode is "digits" or "letters".
	Mode string `yaml:"mode" env:"MODE" validate:"oneof=digits letters"`
	// LetterBase is 0 (A=00) or 1 (A=01).
	LetterBase int `yaml:"letter_base" env:"LETTER_BASE" validate:"oneof=0 1"`
	// MaxInput truncates raw input to this many characters; 0 disables it.
	MaxInput int `yaml:"max_input" env:"MAX_INPUT" validate:"gte=0"`
	// Workers bounds batch parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" env:"WORKERS" validate:"gte=0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Digits:     DefaultDigits,
		Mode:       DefaultMode,
		LetterBase: DefaultBase,
		MaxInput:   DefaultMaxInput,
		Workers:    DefaultWorkers,
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds a Config in three layers.
// Implementation:
//   - Stage 1: start from Default().
//   - Stage 2: overlay the YAML file at path, if path is non-empty.
//   - Stage 3: overlay PICHANCE_* variables from environ (os.Environ when nil).
//
// The result is not validated; callers apply flag overrides first and then
// call Validate.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags on c.
//
// Errors: ErrInvalid wrapping the validator's field errors.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// PhraseMode returns Mode as a phrase.Mode.
func (c Config) PhraseMode() (phrase.Mode, error) { return phrase.ParseMode(c.Mode) }

// PhraseBase returns LetterBase as a phrase.Base.
func (c Config) PhraseBase() (phrase.Base, error) {
	return phrase.ParseBase(fmt.Sprint(c.LetterBase))
}
