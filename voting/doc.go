// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the voting core on top of the entity store.

# Vote Lifecycle

A vote moves through its statuses as the clock passes its window:

	pending → active → completed

NextStatus is the pure transition function. RunLifecycleSweep applies it to
every vote that lags behind the clock using compare-and-set updates, so it
is idempotent and safe to run concurrently. RunSweeper drives the sweep on a
fixed interval. Cancelled is set by an admin only and never left.

# Candidacies and Ballots

RegisterCandidacies adds candidates to a category of a pending vote in one
transaction. CastBallot records at most one ballot per (vote, category,
voter); the unique index and an insert-if-absent statement decide the
winner, and every later call sees the stored ballot unchanged.

# Results

ComputeResults ranks candidates per category by ballot count, ties broken by
ascending student id. Categories without ballots are absent. Results of
completed votes are cached in memory.

# Errors

Failures wrap one of the kinds in package models (ErrNotFound, ErrForbidden,
ErrInvalidState and so on). Internal failures wrap none of them.
*/
package voting
