package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"diceroll/internal/driver"
	"diceroll/internal/ui"
)

type batchOutcome struct {
	results []*driver.Result
	err     error
}

// runBatchWithUI evaluates inputs while a progress view draws on out.
func runBatchWithUI(ctx context.Context, out io.Writer, inputs []string, opts driver.BatchOptions) ([]*driver.Result, error) {
	events := make(chan ui.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	opts.Progress = func(i int, res *driver.Result) {
		total, _ := res.Total()
		events <- ui.Event{Index: i, Input: res.Input, Total: total, Err: res.Err}
	}
	go func() {
		res, err := driver.EvalBatch(ctx, inputs, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("rolling", len(inputs), events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// рисовать некуда: дочитываем события, чтобы воркеры не встали
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
