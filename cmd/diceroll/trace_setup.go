package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"diceroll/internal/trace"
)

type tracing struct {
	tracer trace.Tracer
	format trace.Format
	errOut io.Writer
}

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. close must be called when the command finishes.
func setupTracing(cmd *cobra.Command) (*tracing, error) {
	pf := cmd.Root().PersistentFlags()

	traceOutput, err := pf.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := pf.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := pf.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	return &tracing{tracer: tracer, format: format, errOut: cmd.ErrOrStderr()}, nil
}

// dumpRing prints the in-memory events after a failed command.
func (t *tracing) dumpRing() {
	var ring *trace.RingTracer
	switch tr := t.tracer.(type) {
	case *trace.RingTracer:
		ring = tr
	case *trace.MultiTracer:
		ring = tr.Ring()
	}
	if ring == nil {
		return
	}
	fmt.Fprintln(t.errOut, "trace: last events")
	if err := ring.Dump(t.errOut, t.format); err != nil {
		fmt.Fprintf(t.errOut, "trace: dump error: %v\n", err)
	}
}

// finish flushes the tracer; on failure the ring buffer is dumped first.
func (t *tracing) finish(failed bool) {
	if failed {
		t.dumpRing()
	}
	if err := t.tracer.Flush(); err != nil {
		fmt.Fprintf(t.errOut, "trace: flush error: %v\n", err)
	}
	if err := t.tracer.Close(); err != nil {
		fmt.Fprintf(t.errOut, "trace: close error: %v\n", err)
	}
}
