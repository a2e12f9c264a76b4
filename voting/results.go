// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/campus-awards/models"
)

// ComputeResults tallies a vote's ballots per category. Candidates are
// ranked by count descending, ties broken by ascending student id.
// Categories without ballots are left out.
//
// Completed votes can no longer receive ballots, so their results are cached.
// Callers always get their own copy.
func (s *Service) ComputeResults(ctx context.Context, voteID int64) (models.Results, error) {
	vote, err := s.store.GetVote(ctx, voteID)
	if err != nil {
		return nil, err
	}

	key := resultsKey(voteID)
	if s.results != nil && vote.Status == models.StatusCompleted {
		if cached, ok := s.results.Get(key); ok {
			return cloneResults(cached.(models.Results)), nil
		}
	}

	rows, err := s.store.TallyBallots(ctx, voteID)
	if err != nil {
		return nil, err
	}

	results := make(models.Results)
	for _, r := range rows {
		block, ok := results[r.CategoryID]
		if !ok {
			block = &models.CategoryResult{
				CategoryID:  r.CategoryID,
				Name:        r.CategoryName,
				Description: r.CategoryDescription,
				Candidates:  []models.CandidateResult{},
			}
			results[r.CategoryID] = block
		}
		block.Candidates = append(block.Candidates, models.CandidateResult{
			StudentID: r.StudentID,
			Name:      r.StudentName,
			Matricule: r.Matricule,
			VoteCount: r.VoteCount,
		})
		block.TotalBallots += r.VoteCount
	}

	if s.results != nil && vote.Status == models.StatusCompleted {
		s.results.Set(key, cloneResults(results), cache.DefaultExpiration)
	}
	return results, nil
}

func cloneResults(in models.Results) models.Results {
	out := make(models.Results, len(in))
	for id, block := range in {
		cp := *block
		cp.Candidates = append([]models.CandidateResult(nil), block.Candidates...)
		out[id] = &cp
	}
	return out
}

func (s *Service) forgetResults(voteID int64) {
	if s.results != nil {
		s.results.Delete(resultsKey(voteID))
	}
}

func resultsKey(voteID int64) string {
	return "results:" + strconv.FormatInt(voteID, 10)
}
