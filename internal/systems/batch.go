package systems

import (
	"context"
	"runtime"

	"cognitive-vision/internal/domain"
	"cognitive-vision/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Observer is one FOV request in a batch.
type Observer struct {
	Pos    domain.Position
	Radius uint32
}

// ComputeBatch runs ComputeFOV for every observer concurrently against the same
// grid and returns the results in input order. The grid must not be written
// while the batch runs.
//
// workers <= 0 uses GOMAXPROCS. Cancelling ctx stops scheduling new observers;
// computations already started run to completion and ctx.Err() is returned.
func ComputeBatch(ctx context.Context, g VisionGrid, observers []Observer, workers int) ([]domain.VisibleSet, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]domain.VisibleSet, len(observers))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, obs := range observers {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = ComputeFOV(g, obs.Pos, obs.Radius)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when cancellation happened before any goroutine observed it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "fov_system",
		"observers": len(observers),
		"workers":   workers,
	}).Debug("FOV batch complete.")

	return results, nil
}
