// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the voting core.
// They register on the default registry, served at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ballot outcomes
const (
	OutcomeCreated      = "created"
	OutcomeAlreadyVoted = "already_voted"
	OutcomeRejected     = "rejected"
)

var (
	BallotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "ballots_total",
		Help:      "Ballot submissions by outcome.",
	}, []string{"outcome"})

	CandidaciesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "candidacies_total",
		Help:      "Candidacies registered.",
	})

	SweepTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "sweep_transitions_total",
		Help:      "Vote status transitions applied by the lifecycle sweep.",
	}, []string{"to"})

	SweepFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "voting",
		Name:      "sweep_failures_total",
		Help:      "Votes the lifecycle sweep failed to transition.",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "voting",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of lifecycle sweep cycles.",
		Buckets:   prometheus.DefBuckets,
	})
)
