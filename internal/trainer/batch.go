package trainer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/preflop-trainer/internal/randutil"
)

// GenerateBatch deals n scenarios across workers goroutines. Worker w owns
// every index i with i%workers == w and draws from a source derived from
// seed, so a given (seed, workers) pair always yields the same batch.
func GenerateBatch(ctx context.Context, logger *log.Logger, cfg TrainingConfig, n, workers int, seed int64, opts ...Option) ([]Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid training config: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("scenario count must not be negative, got %d", n)
	}
	workers = max(1, min(workers, n))

	out := make([]Scenario, n)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		gen := NewGenerator(logger, randutil.New(randutil.Derive(seed, w)), opts...)
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = gen.Generate(cfg)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
