// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/campus-awards/models"
)

func (s *Service) CreateGroup(ctx context.Context, p *models.Principal, name, description string) (models.Group, error) {
	if err := requireAdmin(p); err != nil {
		return models.Group{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, validationf("name is required")
	}

	group, err := s.store.CreateGroup(ctx, p.ID, name, description, s.now())
	if err != nil {
		return models.Group{}, err
	}

	s.logger.Info("group created", "group_id", group.ID, "admin_id", p.ID)
	return group, nil
}

func (s *Service) GetGroup(ctx context.Context, id int64) (models.Group, error) {
	return s.store.GetGroup(ctx, id)
}

func (s *Service) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.store.ListGroups(ctx)
}

// GroupStudents lists the students currently in a group.
func (s *Service) GroupStudents(ctx context.Context, id int64) ([]models.Student, error) {
	if _, err := s.store.GetGroup(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListStudentsByGroup(ctx, id)
}

// DeleteGroup deletes a group owned by the calling admin. Its votes are
// deleted with it; its students are detached.
func (s *Service) DeleteGroup(ctx context.Context, p *models.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}

	group, err := s.store.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	if group.AdminID != p.ID {
		return fmt.Errorf("%w: group %d belongs to another admin", models.ErrForbidden, id)
	}

	if err := s.store.DeleteGroup(ctx, id); err != nil {
		return err
	}

	s.logger.Info("group deleted", "group_id", id, "admin_id", p.ID)
	return nil
}
