package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"diceroll/internal/config"
)

// loadConfig reads diceroll.toml and DICEROLL_* and then applies the
// persistent flags the user actually set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	pf := cmd.Root().PersistentFlags()
	path, err := pf.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(path, ".", nil)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if pf.Changed("color") {
		if cfg.Output.Color, err = pf.GetString("color"); err != nil {
			return cfg, err
		}
		cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))
	}
	if pf.Changed("max-diagnostics") {
		if cfg.Output.MaxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	color.NoColor = !useColor(cfg.Output.Color, os.Stdout)
	return cfg, nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f) && os.Getenv("NO_COLOR") == ""
	}
}
