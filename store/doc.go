// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the entity store: SQL access for admins, groups, students,
votes, categories, candidacies and ballots.

All queries use $N placeholders, which both lib/pq and modernc.org/sqlite
accept. Timestamps pass through DBTime before they are written or compared.

# Transactions

	err := st.WithTx(ctx, func(q *store.Queries) error {
		_, err := q.CreateCandidacy(ctx, voteID, categoryID, studentID, now)
		return err
	})

# Errors

Driver errors are classified into models error kinds:

  - sql.ErrNoRows, foreign key violations → models.ErrNotFound
  - unique violations → models.ErrConflict
  - check violations → models.ErrValidation

Anything else is wrapped with github.com/pkg/errors and treated as internal.

# Insert-if-absent

InsertBallotIfAbsent and UpsertStudent use INSERT ... ON CONFLICT DO NOTHING
RETURNING id, so the uniqueness check and the write are a single statement.
*/
package store
