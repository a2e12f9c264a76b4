// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/campus-awards/models"
)

const categoryColumns = `id, vote_id, name, description`

func scanCategory(row scanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.VoteID, &c.Name, &c.Description)
	return c, err
}

func (q *Queries) CreateCategory(ctx context.Context, voteID int64, name, description string) (models.Category, error) {
	c := models.Category{VoteID: voteID, Name: name, Description: description}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO category (vote_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.VoteID, c.Name, c.Description).Scan(&c.ID)
	if err != nil {
		return models.Category{}, classify(err, "category")
	}
	return c, nil
}

func (q *Queries) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	c, err := scanCategory(q.q.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM category WHERE id = $1`, id))
	if err != nil {
		return models.Category{}, classify(err, "category")
	}
	return c, nil
}

func (q *Queries) ListCategories(ctx context.Context, voteID int64) ([]models.Category, error) {
	rows, err := q.q.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM category WHERE vote_id = $1 ORDER BY id`, voteID)
	if err != nil {
		return nil, classify(err, "categories")
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, classify(err, "category")
		}
		categories = append(categories, c)
	}
	return categories, classify(rows.Err(), "categories")
}

func (q *Queries) UpdateCategory(ctx context.Context, c models.Category) error {
	res, err := q.q.ExecContext(ctx,
		`UPDATE category SET name = $1, description = $2 WHERE id = $3`,
		c.Name, c.Description, c.ID)
	if err != nil {
		return classify(err, "category")
	}
	return requireAffected(res, "category")
}

func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return classify(err, "category")
	}
	return requireAffected(res, "category")
}
