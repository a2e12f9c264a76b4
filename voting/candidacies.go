// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"

	"github.com/danielhkuo/campus-awards/metrics"
	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

// RegisterCandidacies makes each student an eligible choice in a category of
// a pending vote. The batch is all-or-nothing: an unknown student or an
// existing candidacy rolls back every insert of the call.
func (s *Service) RegisterCandidacies(ctx context.Context, p *models.Principal, req models.RegisterCandidaciesRequest) ([]models.Candidacy, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if req.VoteID == 0 || req.CategoryID == 0 {
		return nil, validationf("vote_id and category_id are required")
	}
	if len(req.StudentIDs) == 0 {
		return nil, validationf("student_ids must be a non-empty array")
	}

	seen := make(map[int64]bool, len(req.StudentIDs))
	for _, id := range req.StudentIDs {
		if id == 0 {
			return nil, validationf("student id is required")
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: student %d listed twice", models.ErrConflict, id)
		}
		seen[id] = true
	}

	var created []models.Candidacy
	now := s.now()
	err := s.store.WithTx(ctx, func(q *store.Queries) error {
		vote, err := q.GetVote(ctx, req.VoteID)
		if err != nil {
			return err
		}
		category, err := q.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if category.VoteID != vote.ID {
			return fmt.Errorf("%w: category %d does not belong to vote %d", models.ErrNotFound, category.ID, vote.ID)
		}
		if vote.Status != models.StatusPending {
			return fmt.Errorf("%w: vote is %s, candidacies close once it starts", models.ErrInvalidState, vote.Status)
		}

		for _, id := range req.StudentIDs {
			if _, err := q.GetStudent(ctx, id); err != nil {
				return err
			}
			c, err := q.CreateCandidacy(ctx, vote.ID, category.ID, id, now)
			if err != nil {
				return err
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CandidaciesTotal.Add(float64(len(created)))
	s.logger.Info("candidacies registered",
		"vote_id", req.VoteID, "category_id", req.CategoryID, "count", len(created))
	return created, nil
}
