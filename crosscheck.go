package seggo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrStrategyMismatch indicates that two strategies returned different
// scores for the same engine. It signals a bug in one of the solvers, never
// a property of the input.
type ErrStrategyMismatch struct {
	Strategy Strategy
	Score    int
	Want     int
}

func (e *ErrStrategyMismatch) Error() string {
	return fmt.Sprintf("strategy %s returned %d, want %d", e.Strategy, e.Score, e.Want)
}

// CrossCheck runs all strategies concurrently against the shared prefix
// index and returns the agreed score. Strategies cannot fail individually,
// so the only error conditions are context cancellation before the runs
// start and a score disagreement (*ErrStrategyMismatch).
func (e *Engine) CrossCheck(ctx context.Context) (int, error) {
	scores := make([]int, len(Strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range Strategies {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = e.Solve(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	for i, s := range Strategies[1:] {
		if scores[i+1] != scores[0] {
			return 0, &ErrStrategyMismatch{Strategy: s, Score: scores[i+1], Want: scores[0]}
		}
	}
	return scores[0], nil
}
