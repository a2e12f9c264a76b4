// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

const groupColumns = `id, name, description, admin_id, created_at`

func scanGroup(row scanner) (models.Group, error) {
	var g models.Group
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.AdminID, &g.CreatedAt)
	return g, err
}

func (q *Queries) CreateGroup(ctx context.Context, adminID int64, name, description string, now time.Time) (models.Group, error) {
	g := models.Group{Name: name, Description: description, AdminID: adminID, CreatedAt: DBTime(now)}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO student_group (name, description, admin_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, g.Name, g.Description, g.AdminID, g.CreatedAt).Scan(&g.ID)
	if err != nil {
		return models.Group{}, classify(err, "group")
	}
	return g, nil
}

func (q *Queries) GetGroup(ctx context.Context, id int64) (models.Group, error) {
	g, err := scanGroup(q.q.QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM student_group WHERE id = $1`, id))
	if err != nil {
		return models.Group{}, classify(err, "group")
	}
	return g, nil
}

func (q *Queries) ListGroups(ctx context.Context) ([]models.Group, error) {
	rows, err := q.q.QueryContext(ctx, `SELECT `+groupColumns+` FROM student_group ORDER BY id`)
	if err != nil {
		return nil, classify(err, "groups")
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, classify(err, "group")
		}
		groups = append(groups, g)
	}
	return groups, classify(rows.Err(), "groups")
}

// DeleteGroup removes a group. Its votes go with it; its students stay, detached.
func (q *Queries) DeleteGroup(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `DELETE FROM student_group WHERE id = $1`, id)
	if err != nil {
		return classify(err, "group")
	}
	return requireAffected(res, "group")
}
