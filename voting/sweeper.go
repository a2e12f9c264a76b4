// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"time"
)

// RunSweeper runs the lifecycle sweep once immediately and then on every
// tick of interval until ctx is cancelled. A failed cycle is not retried
// until the next tick.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	s.logger.Info("lifecycle sweeper started", "interval", interval.String())
	s.sweepOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lifecycle sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Service) sweepOnce(ctx context.Context) {
	if _, err := s.RunLifecycleSweep(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("lifecycle sweep cycle skipped", "error", err)
	}
}
