package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"diceroll/internal/config"
	"diceroll/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "diceroll",
	Short: "Dice notation evaluator",
	Long: `diceroll evaluates dice expressions such as "4d6kh3", "2d20kl1 + 5"
or "(1d8, 1d10)e8" and shows every rolled value.`,
	SilenceUsage: true,
}

// main регистрирует команды и глобальные флаги; при ошибке выходим с кодом 1.
func main() {
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerCommands() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: nearest "+config.FileName+")")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 32, "maximum number of diagnostics to show")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 1024, "events kept by the ring tracer")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go execution trace to file")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
