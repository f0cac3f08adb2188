package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"diceroll/internal/config"
	"diceroll/internal/diagfmt"
	"diceroll/internal/driver"
	"diceroll/internal/observ"
	"diceroll/internal/rollfmt"
)

var rollCmd = &cobra.Command{
	Use:   "roll [flags] EXPR...",
	Short: "Evaluate dice expressions",
	Long: `Roll evaluates each expression and prints the rolled values and the total.
With no arguments, or with "-", expressions are read from stdin, one per line.`,
	Example: `  diceroll roll 4d6kh3
  diceroll roll --seed 42 "2d20kl1 + 5" "3d6rr1"
  diceroll roll --format json "(1d8, 1d10)e8"`,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().Uint64("seed", 0, "seed for reproducible rolls (expression i uses seed+i)")
	rollCmd.Flags().String("format", "", "output format (pretty|json|msgpack|tree)")
	rollCmd.Flags().Int("jobs", 0, "expressions evaluated in parallel (0 = GOMAXPROCS)")
	rollCmd.Flags().Uint64("max-dice", config.DefaultMaxDice, "maximum dice in one group (0 = unlimited)")
	rollCmd.Flags().Uint64("max-sides", config.DefaultMaxSides, "maximum sides of a die (0 = unlimited)")
	rollCmd.Flags().Int("max-reroll-rounds", 0, "rounds one reroll may take before failing")
	rollCmd.Flags().String("progress", "auto", "show batch progress on stderr (auto|on|off)")
}

var errRollFailed = errors.New("roll failed")

func runRoll(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { tr.finish(err != nil) }()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	flags := cmd.Flags()
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	format, err := rollfmt.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if flags.Changed("jobs") {
		if cfg.Output.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	if flags.Changed("max-dice") {
		if cfg.Limits.MaxDice, err = flags.GetUint64("max-dice"); err != nil {
			return err
		}
	}
	if flags.Changed("max-sides") {
		if cfg.Limits.MaxSides, err = flags.GetUint64("max-sides"); err != nil {
			return err
		}
	}
	if flags.Changed("max-reroll-rounds") {
		if cfg.Limits.MaxRerollRounds, err = flags.GetInt("max-reroll-rounds"); err != nil {
			return err
		}
	}

	opts := driver.BatchOptions{
		Options: driver.Options{
			MaxDiagnostics: cfg.Output.MaxDiagnostics,
			Limits:         cfg.HirOptions(),
		},
		Jobs: cfg.Output.Jobs,
	}
	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return err
		}
		opts.Seed = &seed
	}
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if timings {
		opts.Timer = observ.NewTimer()
	}

	inputs := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		if inputs, err = readExpressions(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no expressions to roll")
	}

	progressFlag, err := flags.GetString("progress")
	if err != nil {
		return err
	}
	mode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}

	var results []*driver.Result
	if shouldUseTUI(mode, len(inputs)) {
		results, err = runBatchWithUI(cmd.Context(), cmd.ErrOrStderr(), inputs, opts)
	} else {
		results, err = driver.EvalBatch(cmd.Context(), inputs, opts)
	}
	if err != nil {
		return fmt.Errorf("roll: %w", err)
	}

	failed := 0
	entries := make([]rollfmt.Entry, len(results))
	diagOpts := diagfmt.PrettyOpts{
		Color:      useColor(cfg.Output.Color, os.Stderr),
		ShowNotes:  true,
		ShowSource: true,
	}
	for i, res := range results {
		entries[i] = rollfmt.Entry{Input: res.Input, Roll: res.Roll, Err: res.Err}
		if res.Err != nil {
			failed++
		}
		// Выводим диагностику в stderr, если есть
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagOpts)
		}
	}

	out := cmd.OutOrStdout()
	if err := rollfmt.Write(out, entries, format, rollfmt.Options{
		Color:     !color.NoColor,
		ShowInput: len(entries) > 1,
	}); err != nil {
		return err
	}

	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), opts.Timer.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d expressions", errRollFailed, failed, len(entries))
	}
	return nil
}

// readExpressions reads one expression per non-blank line.
func readExpressions(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	return out, nil
}
