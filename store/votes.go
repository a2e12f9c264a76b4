// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

const voteColumns = `id, title, description, start_date, end_date, status, group_id, admin_id, created_at`

func scanVote(row scanner) (models.Vote, error) {
	var v models.Vote
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.StartDate, &v.EndDate,
		&v.Status, &v.GroupID, &v.AdminID, &v.CreatedAt)
	return v, err
}

// VoteFilter narrows ListVotes. Zero values match everything.
type VoteFilter struct {
	Statuses []string
	GroupID  *int64
}

func (q *Queries) CreateVote(ctx context.Context, v models.Vote) (models.Vote, error) {
	v.StartDate = DBTime(v.StartDate)
	v.EndDate = DBTime(v.EndDate)
	v.CreatedAt = DBTime(v.CreatedAt)
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO vote (title, description, start_date, end_date, status, group_id, admin_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, v.Title, v.Description, v.StartDate, v.EndDate, v.Status, v.GroupID, v.AdminID, v.CreatedAt).Scan(&v.ID)
	if err != nil {
		return models.Vote{}, classify(err, "vote")
	}
	return v, nil
}

func (q *Queries) GetVote(ctx context.Context, id int64) (models.Vote, error) {
	v, err := scanVote(q.q.QueryRowContext(ctx,
		`SELECT `+voteColumns+` FROM vote WHERE id = $1`, id))
	if err != nil {
		return models.Vote{}, classify(err, "vote")
	}
	return v, nil
}

func (q *Queries) ListVotes(ctx context.Context, f VoteFilter) ([]models.Vote, error) {
	var (
		where []string
		args  []any
	)
	if len(f.Statuses) > 0 {
		marks := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			args = append(args, s)
			marks[i] = fmt.Sprintf("$%d", len(args))
		}
		where = append(where, "status IN ("+strings.Join(marks, ", ")+")")
	}
	if f.GroupID != nil {
		args = append(args, *f.GroupID)
		where = append(where, fmt.Sprintf("group_id = $%d", len(args)))
	}

	query := `SELECT ` + voteColumns + ` FROM vote`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY start_date, id`

	return q.listVotes(ctx, query, args...)
}

// ListSweepCandidates returns the votes the lifecycle sweep may transition
// at now: pending votes whose window contains now, and active votes whose
// end date has been reached.
func (q *Queries) ListSweepCandidates(ctx context.Context, now time.Time) ([]models.Vote, error) {
	now = DBTime(now)
	return q.listVotes(ctx, `
		SELECT `+voteColumns+` FROM vote
		WHERE (status = $1 AND start_date <= $3 AND end_date >= $3)
		   OR (status = $2 AND end_date <= $3)
		ORDER BY id
	`, models.StatusPending, models.StatusActive, now)
}

func (q *Queries) listVotes(ctx context.Context, query string, args ...any) ([]models.Vote, error) {
	rows, err := q.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "votes")
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, classify(err, "vote")
		}
		votes = append(votes, v)
	}
	return votes, classify(rows.Err(), "votes")
}

// UpdateVote writes the title, description and window of v. Status is
// left alone; it only moves through TransitionVoteStatus.
func (q *Queries) UpdateVote(ctx context.Context, v models.Vote) error {
	res, err := q.q.ExecContext(ctx, `
		UPDATE vote
		SET title = $1, description = $2, start_date = $3, end_date = $4
		WHERE id = $5
	`, v.Title, v.Description, DBTime(v.StartDate), DBTime(v.EndDate), v.ID)
	if err != nil {
		return classify(err, "vote")
	}
	return requireAffected(res, "vote")
}

// TransitionVoteStatus moves a vote from one status to another only if it
// is still in the from status. It reports whether a row changed, so
// concurrent callers apply a transition at most once.
func (q *Queries) TransitionVoteStatus(ctx context.Context, id int64, from, to string) (bool, error) {
	res, err := q.q.ExecContext(ctx,
		`UPDATE vote SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, classify(err, "vote")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, classify(err, "vote")
	}
	return n == 1, nil
}

// DeleteVote removes a vote with its categories, candidacies and ballots.
func (q *Queries) DeleteVote(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `DELETE FROM vote WHERE id = $1`, id)
	if err != nil {
		return classify(err, "vote")
	}
	return requireAffected(res, "vote")
}
