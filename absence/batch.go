// SPDX-License-Identifier: MIT

package absence

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pichance/automaton"
)

// EstimateAll evaluates NotFoundProbability for every pattern with the same n.
// Implementation:
//   - Stage 1: validate n once so a bad exponent fails before any work starts.
//   - Stage 2: fan the patterns out over an errgroup limited to the worker count.
//   - Stage 3: each worker writes its own slot, so out[i] belongs to patterns[i].
//
// Behavior highlights:
//   - The first failing pattern cancels the rest; its error is returned.
//   - A cancelled ctx stops scheduling and returns ctx.Err().
//   - Results equal sequential NotFoundProbability calls bit for bit.
//
// Errors:
//   - ErrInvalidExponent, ErrInvalidPattern (wrapped with the pattern index).
//   - context.Canceled / context.DeadlineExceeded.
func EstimateAll(ctx context.Context, patterns []automaton.Pattern, n int64, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("absence.EstimateAll: n=%d: %w", n, ErrInvalidExponent)
	}
	o := gatherOptions(opts...)

	out := make([]float64, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range patterns {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			q, err := NotFoundProbability(patterns[i], n)
			if err != nil {
				return fmt.Errorf("absence.EstimateAll: pattern %d: %w", i, err)
			}
			out[i] = q

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Parent cancellation may stop the loop before any worker observes it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
