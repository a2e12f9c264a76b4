// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

const ballotColumns = `id, vote_id, category_id, voter_student_id, candidate_student_id, cast_at`

func scanBallot(row scanner) (models.Ballot, error) {
	var b models.Ballot
	err := row.Scan(&b.ID, &b.VoteID, &b.CategoryID, &b.VoterStudentID, &b.CandidateStudentID, &b.CastAt)
	return b, err
}

// InsertBallotIfAbsent stores b unless a ballot already exists for its
// (vote, category, voter) key. The check and the write are one statement,
// so concurrent callers cannot both create. When a ballot already exists it
// is returned unchanged with created == false.
func (q *Queries) InsertBallotIfAbsent(ctx context.Context, b models.Ballot, now time.Time) (models.Ballot, bool, error) {
	b.CastAt = DBTime(now)
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO ballot (vote_id, category_id, voter_student_id, candidate_student_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (vote_id, category_id, voter_student_id) DO NOTHING
		RETURNING id
	`, b.VoteID, b.CategoryID, b.VoterStudentID, b.CandidateStudentID, b.CastAt).Scan(&b.ID)
	if err == nil {
		return b, true, nil
	}
	if !isNoRows(err) {
		return models.Ballot{}, false, classify(err, "ballot")
	}

	existing, err := q.GetBallot(ctx, b.VoteID, b.CategoryID, b.VoterStudentID)
	if err != nil {
		return models.Ballot{}, false, err
	}
	return existing, false, nil
}

func (q *Queries) GetBallot(ctx context.Context, voteID, categoryID, voterID int64) (models.Ballot, error) {
	b, err := scanBallot(q.q.QueryRowContext(ctx, `
		SELECT `+ballotColumns+` FROM ballot
		WHERE vote_id = $1 AND category_id = $2 AND voter_student_id = $3
	`, voteID, categoryID, voterID))
	if err != nil {
		return models.Ballot{}, classify(err, "ballot")
	}
	return b, nil
}

// HasBallot reports whether the voter cast a ballot in any category of the vote.
func (q *Queries) HasBallot(ctx context.Context, voteID, voterID int64) (bool, error) {
	var exists bool
	err := q.q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM ballot
			WHERE vote_id = $1 AND voter_student_id = $2
		)
	`, voteID, voterID).Scan(&exists)
	if err != nil {
		return false, classify(err, "ballot")
	}
	return exists, nil
}

func (q *Queries) CountBallots(ctx context.Context, voteID int64) (int, error) {
	var n int
	err := q.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ballot WHERE vote_id = $1`, voteID).Scan(&n)
	if err != nil {
		return 0, classify(err, "ballots")
	}
	return n, nil
}

// TallyRow is one (category, candidate) group of ballots.
type TallyRow struct {
	CategoryID          int64
	CategoryName        string
	CategoryDescription string
	StudentID           int64
	StudentName         string
	Matricule           string
	VoteCount           int
}

// TallyBallots counts a vote's ballots per (category, candidate), ordered by
// category, then count descending, then candidate id ascending.
func (q *Queries) TallyBallots(ctx context.Context, voteID int64) ([]TallyRow, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT b.category_id, c.name, c.description,
		       b.candidate_student_id, s.name, s.matricule,
		       COUNT(*) AS vote_count
		FROM ballot b
		JOIN category c ON c.id = b.category_id
		JOIN student s ON s.id = b.candidate_student_id
		WHERE b.vote_id = $1
		GROUP BY b.category_id, c.name, c.description, b.candidate_student_id, s.name, s.matricule
		ORDER BY b.category_id, vote_count DESC, b.candidate_student_id
	`, voteID)
	if err != nil {
		return nil, classify(err, "tally")
	}
	defer rows.Close()

	tally := []TallyRow{}
	for rows.Next() {
		var r TallyRow
		if err := rows.Scan(&r.CategoryID, &r.CategoryName, &r.CategoryDescription,
			&r.StudentID, &r.StudentName, &r.Matricule, &r.VoteCount); err != nil {
			return nil, classify(err, "tally")
		}
		tally = append(tally, r)
	}
	return tally, classify(rows.Err(), "tally")
}
