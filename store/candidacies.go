// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

// CreateCandidacy inserts a candidacy. The (vote, category, student) unique
// index turns a duplicate into ErrConflict.
func (q *Queries) CreateCandidacy(ctx context.Context, voteID, categoryID, studentID int64, now time.Time) (models.Candidacy, error) {
	c := models.Candidacy{VoteID: voteID, CategoryID: categoryID, StudentID: studentID, CreatedAt: DBTime(now)}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO candidacy (vote_id, category_id, student_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.VoteID, c.CategoryID, c.StudentID, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return models.Candidacy{}, classify(err, "candidacy")
	}
	return c, nil
}

func (q *Queries) CandidacyExists(ctx context.Context, voteID, categoryID, studentID int64) (bool, error) {
	var exists bool
	err := q.q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM candidacy
			WHERE vote_id = $1 AND category_id = $2 AND student_id = $3
		)
	`, voteID, categoryID, studentID).Scan(&exists)
	if err != nil {
		return false, classify(err, "candidacy")
	}
	return exists, nil
}

func (q *Queries) CountCandidacies(ctx context.Context, voteID, categoryID int64) (int, error) {
	var n int
	err := q.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM candidacy WHERE vote_id = $1 AND category_id = $2`,
		voteID, categoryID).Scan(&n)
	if err != nil {
		return 0, classify(err, "candidacies")
	}
	return n, nil
}

// ListCandidates returns the candidacies of every category of a vote joined
// with student detail, keyed by category id.
func (q *Queries) ListCandidates(ctx context.Context, voteID int64) (map[int64][]models.CandidateDetail, error) {
	rows, err := q.q.QueryContext(ctx, `
		SELECT c.category_id, c.id, s.id, s.name, s.matricule
		FROM candidacy c
		JOIN student s ON s.id = c.student_id
		WHERE c.vote_id = $1
		ORDER BY c.category_id, c.id
	`, voteID)
	if err != nil {
		return nil, classify(err, "candidacies")
	}
	defer rows.Close()

	byCategory := make(map[int64][]models.CandidateDetail)
	for rows.Next() {
		var categoryID int64
		var d models.CandidateDetail
		if err := rows.Scan(&categoryID, &d.CandidacyID, &d.StudentID, &d.Name, &d.Matricule); err != nil {
			return nil, classify(err, "candidacy")
		}
		byCategory[categoryID] = append(byCategory[categoryID], d)
	}
	return byCategory, classify(rows.Err(), "candidacies")
}
