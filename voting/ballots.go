// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"

	"github.com/danielhkuo/campus-awards/metrics"
	"github.com/danielhkuo/campus-awards/models"
)

// CastBallot records the voter's choice in one category of an active vote.
// The first ballot for a (vote, category, voter) wins; later calls return
// that stored ballot with created == false and never change it.
func (s *Service) CastBallot(ctx context.Context, p *models.Principal, req models.CastBallotRequest) (models.Ballot, bool, error) {
	ballot, created, err := s.castBallot(ctx, p, req)
	switch {
	case err != nil:
		metrics.BallotsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
	case created:
		metrics.BallotsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()
	default:
		metrics.BallotsTotal.WithLabelValues(metrics.OutcomeAlreadyVoted).Inc()
	}
	return ballot, created, err
}

func (s *Service) castBallot(ctx context.Context, p *models.Principal, req models.CastBallotRequest) (models.Ballot, bool, error) {
	if err := requirePrincipal(p); err != nil {
		return models.Ballot{}, false, err
	}
	if req.VoteID == 0 || req.CategoryID == 0 || req.VoterStudentID == 0 || req.CandidateStudentID == 0 {
		return models.Ballot{}, false, validationf("vote_id, category_id, voter_student_id and candidate_student_id are required")
	}
	if !p.IsStudent() || p.ID != req.VoterStudentID {
		return models.Ballot{}, false, fmt.Errorf("%w: ballots are cast by the voting student only", models.ErrForbidden)
	}

	vote, err := s.store.GetVote(ctx, req.VoteID)
	if err != nil {
		return models.Ballot{}, false, err
	}
	if vote.Status != models.StatusActive {
		return models.Ballot{}, false, fmt.Errorf("%w: vote is %s", models.ErrInvalidState, vote.Status)
	}

	category, err := s.store.GetCategory(ctx, req.CategoryID)
	if err != nil {
		return models.Ballot{}, false, err
	}
	if category.VoteID != vote.ID {
		return models.Ballot{}, false, fmt.Errorf("%w: category %d does not belong to vote %d", models.ErrNotFound, category.ID, vote.ID)
	}

	voter, err := s.store.GetStudent(ctx, req.VoterStudentID)
	if err != nil {
		return models.Ballot{}, false, err
	}
	if voter.GroupID == nil || *voter.GroupID != vote.GroupID {
		return models.Ballot{}, false, fmt.Errorf("%w: student is not in this vote's group", models.ErrForbidden)
	}

	ok, err := s.store.CandidacyExists(ctx, vote.ID, category.ID, req.CandidateStudentID)
	if err != nil {
		return models.Ballot{}, false, err
	}
	if !ok {
		return models.Ballot{}, false, fmt.Errorf("%w: student %d is not a candidate in this category", models.ErrNotFound, req.CandidateStudentID)
	}

	ballot, created, err := s.store.InsertBallotIfAbsent(ctx, models.Ballot{
		VoteID:             vote.ID,
		CategoryID:         category.ID,
		VoterStudentID:     req.VoterStudentID,
		CandidateStudentID: req.CandidateStudentID,
	}, s.now())
	if err != nil {
		return models.Ballot{}, false, err
	}

	if created {
		s.logger.Info("ballot cast", "vote_id", vote.ID, "category_id", category.ID, "ballot_id", ballot.ID)
	}
	return ballot, created, nil
}

// HasVoted reports whether the student cast a ballot in any category of the vote.
func (s *Service) HasVoted(ctx context.Context, voteID, studentID int64) (bool, error) {
	if voteID == 0 || studentID == 0 {
		return false, validationf("vote_id and student_id are required")
	}
	if _, err := s.store.GetVote(ctx, voteID); err != nil {
		return false, err
	}
	return s.store.HasBallot(ctx, voteID, studentID)
}
