// Package config loads evaluator limits and output defaults.
//
// Precedence, lowest first: built-in defaults, diceroll.toml, DICEROLL_*
// environment variables, command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"diceroll/internal/hir"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DICEROLL_"

// Лимиты по умолчанию. 0 в файле, env или флаге снимает ограничение.
const (
	DefaultMaxDice  uint64 = 10_000
	DefaultMaxSides uint64 = 1 << 32
)

var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrBadValue   = errors.New("invalid config value")
)

// Limits bound how much work one expression may cause. Zero means unlimited.
type Limits struct {
	MaxDice         uint64 `toml:"max_dice" env:"MAX_DICE"`
	MaxSides        uint64 `toml:"max_sides" env:"MAX_SIDES"`
	MaxRerollRounds int    `toml:"max_reroll_rounds" env:"MAX_REROLL_ROUNDS"`
}

type Output struct {
	Format         string `toml:"format" env:"FORMAT"`
	Color          string `toml:"color" env:"COLOR"` // auto|on|off
	Jobs           int    `toml:"jobs" env:"JOBS"`
	MaxDiagnostics int    `toml:"max_diagnostics" env:"MAX_DIAGNOSTICS"`
}

type Config struct {
	Limits Limits `toml:"limits"`
	Output Output `toml:"output"`
	// Path is the file the config was read from, empty for defaults only.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: Limits{
			MaxDice:         DefaultMaxDice,
			MaxSides:        DefaultMaxSides,
			MaxRerollRounds: hir.DefaultMaxRerollRounds,
		},
		Output: Output{
			Format:         "pretty",
			Color:          "auto",
			MaxDiagnostics: 32,
		},
	}
}

// LoadFile decodes path over cfg. Keys the file sets replace cfg's values;
// anything it does not mention is left alone.
func LoadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return nil
}

// ApplyEnv overrides cfg from DICEROLL_* variables. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load builds the configuration: defaults, then the file at explicitPath or
// the nearest diceroll.toml above startDir, then the environment.
func Load(explicitPath, startDir string, environ map[string]string) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return cfg, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg, environ); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no command could use.
func (c Config) Validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: output.color %q (want auto|on|off)", ErrBadValue, c.Output.Color)
	}
	if c.Output.Jobs < 0 {
		return fmt.Errorf("%w: output.jobs %d", ErrBadValue, c.Output.Jobs)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: output.max_diagnostics %d", ErrBadValue, c.Output.MaxDiagnostics)
	}
	if c.Limits.MaxRerollRounds < 0 {
		return fmt.Errorf("%w: limits.max_reroll_rounds %d", ErrBadValue, c.Limits.MaxRerollRounds)
	}
	return nil
}

// HirOptions converts the limits for the evaluator.
func (c Config) HirOptions() hir.Options {
	return hir.Options{
		MaxDice:         c.Limits.MaxDice,
		MaxSides:        c.Limits.MaxSides,
		MaxRerollRounds: c.Limits.MaxRerollRounds,
	}
}
