// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/danielhkuo/campus-awards/auth"
	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

const minPasswordLen = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUp creates an admin. The first admin ever created is verified
// immediately; later ones wait for a verified admin to verify them.
func (s *Service) SignUp(ctx context.Context, email, password string) (models.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return models.Admin{}, validationf("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return models.Admin{}, validationf("invalid email")
	}
	if len(password) < minPasswordLen {
		return models.Admin{}, validationf("password must be at least %d characters long", minPasswordLen)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Admin{}, err
	}

	var admin models.Admin
	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		count, err := q.CountAdmins(ctx)
		if err != nil {
			return err
		}
		admin, err = q.CreateAdmin(ctx, email, hash, count == 0, s.now())
		return err
	})
	if err != nil {
		return models.Admin{}, err
	}

	s.logger.Info("admin created", "admin_id", admin.ID, "verified", admin.IsVerified)
	return admin, nil
}

// SignIn checks admin credentials. Unverified admins are refused.
func (s *Service) SignIn(ctx context.Context, email, password string) (models.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return models.Admin{}, validationf("email and password are required")
	}

	admin, err := s.store.GetAdminByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return models.Admin{}, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if err != nil {
		return models.Admin{}, err
	}

	if err := auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return models.Admin{}, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}
	if !admin.IsVerified {
		return models.Admin{}, fmt.Errorf("%w: admin not verified", models.ErrForbidden)
	}

	return admin, nil
}

// VerifyAdmin marks another admin as verified. Only verified admins may do so.
func (s *Service) VerifyAdmin(ctx context.Context, p *models.Principal, adminID int64) (models.Admin, error) {
	if err := requireAdmin(p); err != nil {
		return models.Admin{}, err
	}

	caller, err := s.store.GetAdmin(ctx, p.ID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Admin{}, fmt.Errorf("%w: unknown admin", models.ErrUnauthorized)
	}
	if err != nil {
		return models.Admin{}, err
	}
	if !caller.IsVerified {
		return models.Admin{}, fmt.Errorf("%w: admin not verified", models.ErrForbidden)
	}

	if err := s.store.SetAdminVerified(ctx, adminID, true); err != nil {
		return models.Admin{}, err
	}

	s.logger.Info("admin verified", "admin_id", adminID, "by", p.ID)
	return s.store.GetAdmin(ctx, adminID)
}
