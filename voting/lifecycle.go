// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/metrics"
	"github.com/danielhkuo/campus-awards/models"
)

// NextStatus returns the status a vote should hold at now.
//
//	pending → active     when start <= now <= end
//	active  → completed  when now >= end
//
// Every other status, cancelled included, is returned unchanged.
func NextStatus(status string, start, end, now time.Time) string {
	switch status {
	case models.StatusPending:
		if !now.Before(start) && !now.After(end) {
			return models.StatusActive
		}
	case models.StatusActive:
		if !now.Before(end) {
			return models.StatusCompleted
		}
	}
	return status
}

// RunLifecycleSweep advances every vote whose status lags behind the clock.
// Each step is a compare-and-set on the stored status, so repeated or
// concurrent sweeps at the same instant apply a transition at most once.
// A failure on one vote is logged and counted; the sweep moves on.
func (s *Service) RunLifecycleSweep(ctx context.Context) (models.SweepReport, error) {
	started := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(started).Seconds()) }()

	now := s.now()
	votes, err := s.store.ListSweepCandidates(ctx, now)
	if err != nil {
		s.logger.Error("lifecycle sweep failed", "error", err)
		return models.SweepReport{}, err
	}

	report := models.SweepReport{Examined: len(votes)}
	for _, v := range votes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		// A vote whose window is a single instant goes pending → active →
		// completed in one sweep, so a second sweep at the same now finds
		// nothing left to do.
		status := v.Status
		for {
			next := NextStatus(status, v.StartDate, v.EndDate, now)
			if next == status {
				break
			}

			changed, err := s.store.TransitionVoteStatus(ctx, v.ID, status, next)
			if err != nil {
				report.Failed++
				metrics.SweepFailuresTotal.Inc()
				s.logger.Error("vote transition failed",
					"vote_id", v.ID, "from", status, "to", next, "error", err)
				break
			}
			if !changed {
				// Someone else moved it first.
				break
			}

			metrics.SweepTransitionsTotal.WithLabelValues(next).Inc()
			switch next {
			case models.StatusActive:
				report.Activated++
			case models.StatusCompleted:
				report.Completed++
			}
			s.logger.Info("vote transitioned", "vote_id", v.ID, "from", status, "to", next)
			status = next
		}
	}

	if report.Activated+report.Completed+report.Failed > 0 {
		s.logger.Info("lifecycle sweep completed",
			"examined", report.Examined,
			"activated", report.Activated,
			"completed", report.Completed,
			"failed", report.Failed,
		)
	}
	return report, nil
}
