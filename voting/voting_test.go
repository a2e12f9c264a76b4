// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
	"github.com/danielhkuo/campus-awards/testutil"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fixture is a group with an admin, three students and a service whose clock
// reads baseTime.
type fixture struct {
	svc      *Service
	conn     *sql.DB
	store    *store.Store
	clock    *testutil.FakeClock
	admin    *models.Principal
	group    models.Group
	students []models.Student
	voters   []*models.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	clock := testutil.NewFakeClock(baseTime)
	st := store.New(conn)
	svc := NewService(st,
		WithClock(clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	f := &fixture{svc: svc, conn: conn, store: st, clock: clock}
	_, f.admin = testutil.CreateTestAdmin(t, conn, "admin@school.test")
	f.group = testutil.CreateTestGroup(t, conn, f.admin.ID, "Class of 2025")
	for _, m := range []string{"S001", "S002", "S003"} {
		s, p := testutil.CreateTestStudent(t, conn, &f.group.ID, "Student "+m, m)
		f.students = append(f.students, s)
		f.voters = append(f.voters, p)
	}
	return f
}

// vote creates a vote in the fixture group with a window relative to baseTime
func (f *fixture) vote(t *testing.T, status string, startOffset, endOffset time.Duration) models.Vote {
	t.Helper()
	return testutil.CreateTestVote(t, f.conn, f.admin.ID, f.group.ID, status,
		baseTime.Add(startOffset), baseTime.Add(endOffset))
}

func (f *fixture) status(t *testing.T, voteID int64) string {
	t.Helper()
	v, err := f.store.GetVote(context.Background(), voteID)
	require.NoError(t, err)
	return v.Status
}

func (f *fixture) ballot(p *models.Principal, voteID, categoryID, candidateID int64) models.CastBallotRequest {
	return models.CastBallotRequest{
		VoteID:             voteID,
		CategoryID:         categoryID,
		VoterStudentID:     p.ID,
		CandidateStudentID: candidateID,
	}
}
