// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/campus-awards/models"
)

const adminColumns = `id, email, password_hash, is_verified, created_at`

func scanAdmin(row scanner) (models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsVerified, &a.CreatedAt)
	return a, err
}

func (q *Queries) CountAdmins(ctx context.Context) (int, error) {
	var n int
	if err := q.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin`).Scan(&n); err != nil {
		return 0, classify(err, "admin")
	}
	return n, nil
}

func (q *Queries) CreateAdmin(ctx context.Context, email, passwordHash string, verified bool, now time.Time) (models.Admin, error) {
	a := models.Admin{Email: email, PasswordHash: passwordHash, IsVerified: verified, CreatedAt: DBTime(now)}
	err := q.q.QueryRowContext(ctx, `
		INSERT INTO admin (email, password_hash, is_verified, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.Email, a.PasswordHash, a.IsVerified, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return models.Admin{}, classify(err, "admin")
	}
	return a, nil
}

func (q *Queries) GetAdmin(ctx context.Context, id int64) (models.Admin, error) {
	a, err := scanAdmin(q.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admin WHERE id = $1`, id))
	if err != nil {
		return models.Admin{}, classify(err, "admin")
	}
	return a, nil
}

func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	a, err := scanAdmin(q.q.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admin WHERE email = $1`, email))
	if err != nil {
		return models.Admin{}, classify(err, "admin")
	}
	return a, nil
}

func (q *Queries) SetAdminVerified(ctx context.Context, id int64, verified bool) error {
	res, err := q.q.ExecContext(ctx, `UPDATE admin SET is_verified = $1 WHERE id = $2`, verified, id)
	if err != nil {
		return classify(err, "admin")
	}
	return requireAffected(res, "admin")
}
