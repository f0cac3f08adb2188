package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diceroll/internal/ast"
	"diceroll/internal/diagfmt"
	"diceroll/internal/driver"
	"diceroll/internal/observ"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] EXPR",
	Short: "Parse a dice expression and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().String("diagnostics", "pretty", "diagnostics format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { tr.finish(err != nil) }()

	var timer *observ.Timer
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		timer = observ.NewTimer()
	}

	result := driver.Parse(cmd.Context(), args[0], cfg.Output.MaxDiagnostics, timer)

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		switch diagFormat {
		case "json":
			err = diagfmt.JSON(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				Max:              cfg.Output.MaxDiagnostics,
			})
		default:
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:      useColor(cfg.Output.Color, os.Stderr),
				ShowNotes:  true,
				ShowSource: true,
			})
		}
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatASTPretty(out, result.Builder, result.Root)
	case "json":
		err = diagfmt.FormatASTJSON(out, result.Builder, result.Root)
	case "tree":
		err = ast.Dump(out, result.Builder, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("parse failed with %d diagnostics", result.Bag.Len())
	}
	return nil
}
