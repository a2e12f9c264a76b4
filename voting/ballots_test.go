// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/testutil"
)

// activeBallotSetup returns an active vote with one category in which the
// first two fixture students are candidates.
func activeBallotSetup(t *testing.T, f *fixture) (models.Vote, models.Category) {
	t.Helper()
	v := f.vote(t, models.StatusActive, -time.Hour, time.Hour)
	c := testutil.CreateTestCategory(t, f.conn, v.ID, "Best Speaker")
	testutil.AddTestCandidacy(t, f.conn, v.ID, c.ID, f.students[0].ID)
	testutil.AddTestCandidacy(t, f.conn, v.ID, c.ID, f.students[1].ID)
	return v, c
}

func TestCastBallotFirstWins(t *testing.T) {
	f := newFixture(t)
	v, c := activeBallotSetup(t, f)
	voter := f.voters[2]
	x, y := f.students[0].ID, f.students[1].ID

	first, created, err := f.svc.CastBallot(context.Background(), voter, f.ballot(voter, v.ID, c.ID, x))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, x, first.CandidateStudentID)
	assert.True(t, baseTime.Equal(first.CastAt))

	second, created, err := f.svc.CastBallot(context.Background(), voter, f.ballot(voter, v.ID, c.ID, y))
	require.NoError(t, err, "a repeated ballot is an outcome, not an error")
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, x, second.CandidateStudentID, "stored choice never changes")

	stored, err := f.store.GetBallot(context.Background(), v.ID, c.ID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, x, stored.CandidateStudentID)
}

func TestCastBallotConcurrentSameKey(t *testing.T) {
	f := newFixture(t)
	v, c := activeBallotSetup(t, f)
	voter := f.voters[2]

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		already int
		ids     = map[int64]bool{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			candidate := f.students[i%2].ID
			b, ok, err := f.svc.CastBallot(context.Background(), voter, f.ballot(voter, v.ID, c.ID, candidate))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[b.ID] = true
			if ok {
				created++
			} else {
				already++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, already)
	assert.Len(t, ids, 1, "every caller sees the same stored ballot")

	count, err := f.store.CountBallots(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCastBallotRejections(t *testing.T) {
	f := newFixture(t)
	v, c := activeBallotSetup(t, f)
	voter := f.voters[2]
	candidate := f.students[0].ID

	pending := f.vote(t, models.StatusPending, time.Hour, 2*time.Hour)
	pendingCat := testutil.CreateTestCategory(t, f.conn, pending.ID, "Pending award")
	testutil.AddTestCandidacy(t, f.conn, pending.ID, pendingCat.ID, candidate)

	otherVote := f.vote(t, models.StatusActive, -time.Hour, time.Hour)
	foreignCat := testutil.CreateTestCategory(t, f.conn, otherVote.ID, "Elsewhere")

	otherGroup := testutil.CreateTestGroup(t, f.conn, f.admin.ID, "Other class")
	_, outsider := testutil.CreateTestStudent(t, f.conn, &otherGroup.ID, "Outsider", "X999")
	_, loner := testutil.CreateTestStudent(t, f.conn, nil, "Loner", "X998")

	tests := []struct {
		name    string
		p       *models.Principal
		req     models.CastBallotRequest
		wantErr error
	}{
		{"anonymous", nil, f.ballot(voter, v.ID, c.ID, candidate), models.ErrUnauthorized},
		{"missing field", voter, models.CastBallotRequest{VoteID: v.ID, CategoryID: c.ID, VoterStudentID: voter.ID}, models.ErrValidation},
		{"admin cannot vote", f.admin, models.CastBallotRequest{VoteID: v.ID, CategoryID: c.ID, VoterStudentID: f.admin.ID, CandidateStudentID: candidate}, models.ErrForbidden},
		{"voting for someone else", voter, models.CastBallotRequest{VoteID: v.ID, CategoryID: c.ID, VoterStudentID: f.voters[0].ID, CandidateStudentID: candidate}, models.ErrForbidden},
		{"unknown vote", voter, f.ballot(voter, 9999, c.ID, candidate), models.ErrNotFound},
		{"vote not active", voter, f.ballot(voter, pending.ID, pendingCat.ID, candidate), models.ErrInvalidState},
		{"category of another vote", voter, f.ballot(voter, v.ID, foreignCat.ID, candidate), models.ErrNotFound},
		{"voter outside the group", outsider, f.ballot(outsider, v.ID, c.ID, candidate), models.ErrForbidden},
		{"voter without a group", loner, f.ballot(loner, v.ID, c.ID, candidate), models.ErrForbidden},
		{"candidate without candidacy", voter, f.ballot(voter, v.ID, c.ID, f.students[2].ID), models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, created, err := f.svc.CastBallot(context.Background(), tt.p, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, created)
		})
	}

	count, err := f.store.CountBallots(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHasVoted(t *testing.T) {
	f := newFixture(t)
	v, _ := activeBallotSetup(t, f)
	second := testutil.CreateTestCategory(t, f.conn, v.ID, "Best Smile")
	testutil.AddTestCandidacy(t, f.conn, v.ID, second.ID, f.students[0].ID)
	voter := f.voters[2]

	voted, err := f.svc.HasVoted(context.Background(), v.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, voted)

	// One ballot in any category counts
	_, _, err = f.svc.CastBallot(context.Background(), voter, f.ballot(voter, v.ID, second.ID, f.students[0].ID))
	require.NoError(t, err)

	voted, err = f.svc.HasVoted(context.Background(), v.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, voted)

	voted, err = f.svc.HasVoted(context.Background(), v.ID, f.voters[0].ID)
	require.NoError(t, err)
	assert.False(t, voted)

	_, err = f.svc.HasVoted(context.Background(), 9999, voter.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
