package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"diceroll/internal/random"
	"diceroll/internal/trace"
)

// BatchOptions configures EvalBatch.
type BatchOptions struct {
	Options
	Jobs int // <= 0 means GOMAXPROCS
	// Seed, when non-nil, makes the batch reproducible: expression i rolls
	// from Seed+i regardless of scheduling.
	Seed *uint64
	// Progress, when set, is called from the worker goroutines as each
	// expression finishes. It must be safe for concurrent use.
	Progress func(i int, res *Result)
}

// EvalBatch evaluates every input in parallel. Each expression owns its
// arena and roll context; results keep input order.
func EvalBatch(ctx context.Context, inputs []string, opts BatchOptions) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	// seeds are drawn up front so a failure happens before any work starts
	seeds := make([]uint64, len(inputs))
	for i := range seeds {
		if opts.Seed != nil {
			seeds[i] = *opts.Seed + uint64(i) //nolint:gosec // i >= 0
			continue
		}
		s, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seed expression %d: %w", i+1, err)
		}
		seeds[i] = s
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "batch", trace.CurrentSpan(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, input := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален, мьютекс не нужен
			results[i] = Eval(gctx, input, random.New(seeds[i]), opts.Options)
			if opts.Progress != nil {
				opts.Progress(i, results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
