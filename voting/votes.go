// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

// CreateVote creates a vote in a group together with its initial
// categories. The vote starts pending unless the request names a status.
func (s *Service) CreateVote(ctx context.Context, p *models.Principal, req models.CreateVoteRequest) (models.VoteDetails, error) {
	if err := requireAdmin(p); err != nil {
		return models.VoteDetails{}, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.VoteDetails{}, validationf("title is required")
	}
	if req.GroupID == 0 {
		return models.VoteDetails{}, validationf("group_id is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return models.VoteDetails{}, validationf("start_date and end_date are required")
	}
	if req.StartDate.After(req.EndDate) {
		return models.VoteDetails{}, validationf("start_date must not be after end_date")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return models.VoteDetails{}, validationf("invalid status %q", status)
	}
	for i, c := range req.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return models.VoteDetails{}, validationf("category %d: name is required", i)
		}
	}

	var details models.VoteDetails
	err := s.store.WithTx(ctx, func(q *store.Queries) error {
		if _, err := q.GetGroup(ctx, req.GroupID); err != nil {
			return err
		}

		vote, err := q.CreateVote(ctx, models.Vote{
			Title:       title,
			Description: req.Description,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Status:      status,
			GroupID:     req.GroupID,
			AdminID:     p.ID,
			CreatedAt:   s.now(),
		})
		if err != nil {
			return err
		}

		details.Vote = vote
		details.Categories = []models.CategoryWithCandidates{}
		for _, in := range req.Categories {
			c, err := q.CreateCategory(ctx, vote.ID, strings.TrimSpace(in.Name), in.Description)
			if err != nil {
				return err
			}
			details.Categories = append(details.Categories, models.CategoryWithCandidates{
				Category:   c,
				Candidates: []models.CandidateDetail{},
			})
		}
		return nil
	})
	if err != nil {
		return models.VoteDetails{}, err
	}

	s.logger.Info("vote created",
		"vote_id", details.Vote.ID,
		"group_id", details.Vote.GroupID,
		"status", details.Vote.Status,
		"categories", len(details.Categories),
	)
	return details, nil
}

func (s *Service) GetVote(ctx context.Context, id int64) (models.Vote, error) {
	return s.store.GetVote(ctx, id)
}

// ListVotes lists votes, optionally narrowed to one group and one status.
func (s *Service) ListVotes(ctx context.Context, groupID *int64, status string) ([]models.Vote, error) {
	f := store.VoteFilter{GroupID: groupID}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, validationf("invalid status %q", status)
		}
		f.Statuses = []string{status}
	}
	return s.store.ListVotes(ctx, f)
}

// ListUpToDateVotes lists pending and active votes as currently stored,
// optionally for one group. It performs no transition.
func (s *Service) ListUpToDateVotes(ctx context.Context, groupID *int64) ([]models.VoteSummary, error) {
	votes, err := s.store.ListVotes(ctx, store.VoteFilter{
		Statuses: []string{models.StatusPending, models.StatusActive},
		GroupID:  groupID,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	summaries := make([]models.VoteSummary, len(votes))
	for i, v := range votes {
		summaries[i] = models.VoteSummary{
			Vote:   v,
			Closes: humanize.RelTime(v.EndDate, now, "ago", "from now"),
		}
	}
	return summaries, nil
}

// VoteDetails returns a vote with its categories and their candidates.
func (s *Service) VoteDetails(ctx context.Context, id int64) (models.VoteDetails, error) {
	vote, err := s.store.GetVote(ctx, id)
	if err != nil {
		return models.VoteDetails{}, err
	}
	categories, err := s.store.ListCategories(ctx, id)
	if err != nil {
		return models.VoteDetails{}, err
	}
	candidates, err := s.store.ListCandidates(ctx, id)
	if err != nil {
		return models.VoteDetails{}, err
	}

	details := models.VoteDetails{
		Vote:       vote,
		Categories: make([]models.CategoryWithCandidates, len(categories)),
	}
	for i, c := range categories {
		list := candidates[c.ID]
		if list == nil {
			list = []models.CandidateDetail{}
		}
		details.Categories[i] = models.CategoryWithCandidates{Category: c, Candidates: list}
	}
	return details, nil
}

// UpdateVote applies a partial update. A cancelled vote keeps its status
// for good, and the merged window must still satisfy start <= end.
// A status change is a compare-and-set against the status read here, so it
// never overwrites a transition the sweep made in between.
func (s *Service) UpdateVote(ctx context.Context, p *models.Principal, id int64, req models.UpdateVoteRequest) (models.Vote, error) {
	if err := requireAdmin(p); err != nil {
		return models.Vote{}, err
	}

	vote, err := s.store.GetVote(ctx, id)
	if err != nil {
		return models.Vote{}, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.Vote{}, validationf("title must not be empty")
		}
		vote.Title = title
	}
	if req.Description != nil {
		vote.Description = *req.Description
	}
	if req.StartDate != nil {
		vote.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		vote.EndDate = *req.EndDate
	}
	if vote.StartDate.After(vote.EndDate) {
		return models.Vote{}, validationf("start_date must not be after end_date")
	}
	from := vote.Status
	if req.Status != nil && *req.Status != vote.Status {
		if !models.ValidStatus(*req.Status) {
			return models.Vote{}, validationf("invalid status %q", *req.Status)
		}
		if vote.Status == models.StatusCancelled {
			return models.Vote{}, fmt.Errorf("%w: vote is cancelled", models.ErrInvalidState)
		}
		vote.Status = *req.Status
	}

	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		if err := q.UpdateVote(ctx, vote); err != nil {
			return err
		}
		if vote.Status == from {
			return nil
		}
		changed, err := q.TransitionVoteStatus(ctx, id, from, vote.Status)
		if err != nil {
			return err
		}
		if !changed {
			return fmt.Errorf("%w: vote %d is no longer %s", models.ErrConflict, id, from)
		}
		return nil
	})
	if err != nil {
		return models.Vote{}, err
	}
	s.forgetResults(id)

	s.logger.Info("vote updated", "vote_id", id, "status", vote.Status, "admin_id", p.ID)
	return s.store.GetVote(ctx, id)
}

// DeleteVote deletes a vote with its categories, candidacies and ballots.
func (s *Service) DeleteVote(ctx context.Context, p *models.Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	if err := s.store.DeleteVote(ctx, id); err != nil {
		return err
	}
	s.forgetResults(id)

	s.logger.Info("vote deleted", "vote_id", id, "admin_id", p.ID)
	return nil
}
