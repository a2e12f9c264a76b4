// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/campus-awards/models"
)

// CreateCategory adds a category to a vote that has not started yet.
func (s *Service) CreateCategory(ctx context.Context, p *models.Principal, req models.CreateCategoryRequest) (models.Category, error) {
	if err := requireAdmin(p); err != nil {
		return models.Category{}, err
	}
	name := strings.TrimSpace(req.Name)
	if req.VoteID == 0 || name == "" {
		return models.Category{}, validationf("vote_id and name are required")
	}

	vote, err := s.store.GetVote(ctx, req.VoteID)
	if err != nil {
		return models.Category{}, err
	}
	if vote.Status != models.StatusPending {
		return models.Category{}, fmt.Errorf("%w: vote is %s", models.ErrInvalidState, vote.Status)
	}

	c, err := s.store.CreateCategory(ctx, vote.ID, name, req.Description)
	if err != nil {
		return models.Category{}, err
	}

	s.logger.Info("category created", "category_id", c.ID, "vote_id", vote.ID)
	return c, nil
}

func (s *Service) ListCategories(ctx context.Context, voteID int64) ([]models.Category, error) {
	if _, err := s.store.GetVote(ctx, voteID); err != nil {
		return nil, err
	}
	return s.store.ListCategories(ctx, voteID)
}

func (s *Service) UpdateCategory(ctx context.Context, p *models.Principal, id int64, req models.UpdateCategoryRequest) (models.Category, error) {
	if err := requireAdmin(p); err != nil {
		return models.Category{}, err
	}

	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.Category{}, validationf("name must not be empty")
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}

	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return models.Category{}, err
	}
	s.forgetResults(c.VoteID)
	return c, nil
}

// DeleteCategory removes a category with its candidacies and ballots.
func (s *Service) DeleteCategory(ctx context.Context, p *models.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}

	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.forgetResults(c.VoteID)

	s.logger.Info("category deleted", "category_id", id, "vote_id", c.VoteID)
	return nil
}
