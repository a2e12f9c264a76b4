// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/testutil"
)

func TestCreateVote(t *testing.T) {
	env := setupEnv(t)
	handler := NewVoteHandler(env.svc, env.cfg)
	admin, ap := testutil.CreateTestAdmin(t, env.db, "admin@school.test")
	group := testutil.CreateTestGroup(t, env.db, admin.ID, "Class of 2025")
	_, student := testutil.CreateTestStudent(t, env.db, &group.ID, "Ada", "S001")

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name           string
		principal      *models.Principal
		body           interface{}
		expectedStatus int
	}{
		{
			name:      "valid vote",
			principal: ap,
			body: models.CreateVoteRequest{
				Title: "Class Awards", StartDate: start, EndDate: end, GroupID: group.ID,
				Categories: []models.CategoryInput{{Name: "Best Speaker"}, {Name: "Best Smile"}},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "anonymous",
			body:           models.CreateVoteRequest{Title: "T", StartDate: start, EndDate: end, GroupID: group.ID},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "student",
			principal:      student,
			body:           models.CreateVoteRequest{Title: "T", StartDate: start, EndDate: end, GroupID: group.ID},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "inverted window",
			principal:      ap,
			body:           models.CreateVoteRequest{Title: "T", StartDate: end, EndDate: start, GroupID: group.ID},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown group",
			principal:      ap,
			body:           models.CreateVoteRequest{Title: "T", StartDate: start, EndDate: end, GroupID: 9999},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler.Create, authed(t, tt.principal, "POST", "/votes", tt.body))
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusCreated {
				return
			}

			var details models.VoteDetails
			testutil.AssertJSON(t, w, &details)
			if details.Vote.Status != models.StatusPending {
				t.Errorf("Expected pending vote, got %s", details.Vote.Status)
			}
			if len(details.Categories) != 2 {
				t.Errorf("Expected 2 categories, got %d", len(details.Categories))
			}
		})
	}
}

func TestListVotes(t *testing.T) {
	env := setupEnv(t)
	handler := NewVoteHandler(env.svc, env.cfg)
	admin, ap := testutil.CreateTestAdmin(t, env.db, "admin@school.test")
	group := testutil.CreateTestGroup(t, env.db, admin.ID, "Class of 2025")
	other := testutil.CreateTestGroup(t, env.db, admin.ID, "Class of 2026")
	_, student := testutil.CreateTestStudent(t, env.db, &group.ID, "Ada", "S001")

	now := time.Now()
	testutil.CreateTestVote(t, env.db, admin.ID, group.ID, models.StatusActive, now.Add(-time.Hour), now.Add(time.Hour))
	testutil.CreateTestVote(t, env.db, admin.ID, group.ID, models.StatusCompleted, now.Add(-3*time.Hour), now.Add(-time.Hour))
	testutil.CreateTestVote(t, env.db, admin.ID, other.ID, models.StatusPending, now.Add(time.Hour), now.Add(2*time.Hour))

	gid := strconv.FormatInt(group.ID, 10)
	tests := []struct {
		name      string
		principal *models.Principal
		path      string
		wantCode  int
		wantCount int
	}{
		{"all votes", ap, "/votes", http.StatusOK, 3},
		{"by group", ap, "/votes?group_id=" + gid, http.StatusOK, 2},
		{"by group and status", ap, "/votes?group_id=" + gid + "&status=active", http.StatusOK, 1},
		{"bad status", ap, "/votes?status=open", http.StatusBadRequest, 0},
		{"bad group", ap, "/votes?group_id=abc", http.StatusBadRequest, 0},
		{"up to date for the student's group", student, "/votes/up-to-date", http.StatusOK, 1},
		{"up to date everywhere", ap, "/votes/up-to-date", http.StatusOK, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.List
			if tt.path == "/votes/up-to-date" {
				h = handler.UpToDate
			}
			w := serve(h, authed(t, tt.principal, "GET", tt.path, nil))
			testutil.AssertStatus(t, w, tt.wantCode)
			if tt.wantCode != http.StatusOK {
				return
			}

			var votes []models.VoteSummary
			testutil.AssertJSON(t, w, &votes)
			if len(votes) != tt.wantCount {
				t.Errorf("Expected %d votes, got %d", tt.wantCount, len(votes))
			}
			if tt.path == "/votes/up-to-date" && len(votes) > 0 && votes[0].Closes == "" {
				t.Error("Expected a closes string on up-to-date votes")
			}
		})
	}
}

func TestUpdateAndDeleteVote(t *testing.T) {
	env := setupEnv(t)
	handler := NewVoteHandler(env.svc, env.cfg)
	admin, ap := testutil.CreateTestAdmin(t, env.db, "admin@school.test")
	group := testutil.CreateTestGroup(t, env.db, admin.ID, "Class of 2025")
	now := time.Now()
	vote := testutil.CreateTestVote(t, env.db, admin.ID, group.ID, models.StatusPending, now.Add(time.Hour), now.Add(2*time.Hour))
	testutil.CreateTestCategory(t, env.db, vote.ID, "Best Speaker")

	title := "Renamed"
	w := serve(handler.Update, withID(authed(t, ap, "PUT", "/votes/x", models.UpdateVoteRequest{Title: &title}), vote.ID))
	testutil.AssertStatus(t, w, http.StatusOK)

	var updated models.Vote
	testutil.AssertJSON(t, w, &updated)
	if updated.Title != title {
		t.Errorf("Expected title %q, got %q", title, updated.Title)
	}

	cancelled := models.StatusCancelled
	w = serve(handler.Update, withID(authed(t, ap, "PUT", "/votes/x", models.UpdateVoteRequest{Status: &cancelled}), vote.ID))
	testutil.AssertStatus(t, w, http.StatusOK)

	active := models.StatusActive
	w = serve(handler.Update, withID(authed(t, ap, "PUT", "/votes/x", models.UpdateVoteRequest{Status: &active}), vote.ID))
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = serve(handler.Categories, withID(authed(t, ap, "GET", "/votes/x/categories", nil), vote.ID))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve(handler.Delete, withID(authed(t, ap, "DELETE", "/votes/x", nil), vote.ID))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = serve(handler.Get, withID(authed(t, ap, "GET", "/votes/x", nil), vote.ID))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var categories int
	if err := env.db.QueryRow("SELECT COUNT(*) FROM category WHERE vote_id = $1", vote.ID).Scan(&categories); err != nil {
		t.Fatalf("Failed to count categories: %v", err)
	}
	if categories != 0 {
		t.Errorf("Expected categories to be deleted with the vote, got %d", categories)
	}
}

func TestGroupHandlers(t *testing.T) {
	env := setupEnv(t)
	handler := NewGroupHandler(env.svc, env.cfg)
	_, ap := testutil.CreateTestAdmin(t, env.db, "admin@school.test")
	_, other := testutil.CreateTestAdmin(t, env.db, "other@school.test")

	w := serve(handler.Create, authed(t, ap, "POST", "/groups", models.CreateGroupRequest{Name: "Class of 2025"}))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var group models.Group
	testutil.AssertJSON(t, w, &group)

	w = serve(handler.Create, authed(t, ap, "POST", "/groups", models.CreateGroupRequest{Name: "Class of 2025"}))
	testutil.AssertStatus(t, w, http.StatusConflict)

	student, _ := testutil.CreateTestStudent(t, env.db, &group.ID, "Ada", "S001")

	w = serve(handler.List, authed(t, nil, "GET", "/groups", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var groups []models.Group
	testutil.AssertJSON(t, w, &groups)
	if len(groups) != 1 {
		t.Errorf("Expected 1 group, got %d", len(groups))
	}

	w = serve(handler.Students, withID(authed(t, nil, "GET", "/groups/x/students", nil), group.ID))
	testutil.AssertStatus(t, w, http.StatusOK)
	var students []models.Student
	testutil.AssertJSON(t, w, &students)
	if len(students) != 1 || students[0].ID != student.ID {
		t.Errorf("Expected student %d in group, got %+v", student.ID, students)
	}

	// Only the owning admin deletes
	w = serve(handler.Delete, withID(authed(t, other, "DELETE", "/groups/x", nil), group.ID))
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = serve(handler.Delete, withID(authed(t, ap, "DELETE", "/groups/x", nil), group.ID))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = serve(handler.Get, withID(authed(t, ap, "GET", "/groups/x", nil), group.ID))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// The student survives without a group
	var groupID *int64
	if err := env.db.QueryRow("SELECT group_id FROM student WHERE id = $1", student.ID).Scan(&groupID); err != nil {
		t.Fatalf("Failed to query student: %v", err)
	}
	if groupID != nil {
		t.Errorf("Expected student to be detached, got group %d", *groupID)
	}
}

func TestCategoryHandlers(t *testing.T) {
	env := setupEnv(t)
	handler := NewCategoryHandler(env.svc, env.cfg)
	admin, ap := testutil.CreateTestAdmin(t, env.db, "admin@school.test")
	group := testutil.CreateTestGroup(t, env.db, admin.ID, "Class of 2025")
	x, _ := testutil.CreateTestStudent(t, env.db, &group.ID, "X", "S001")
	y, _ := testutil.CreateTestStudent(t, env.db, &group.ID, "Y", "S002")
	now := time.Now()
	vote := testutil.CreateTestVote(t, env.db, admin.ID, group.ID, models.StatusPending, now.Add(time.Hour), now.Add(2*time.Hour))

	w := serve(handler.Create, authed(t, ap, "POST", "/categories", models.CreateCategoryRequest{VoteID: vote.ID, Name: "Best Speaker"}))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var category models.Category
	testutil.AssertJSON(t, w, &category)

	register := models.RegisterCandidaciesRequest{VoteID: vote.ID, CategoryID: category.ID, StudentIDs: []int64{x.ID, y.ID}}
	w = serve(handler.RegisterCandidacies, authed(t, ap, "POST", "/candidacies", register))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var candidacies []models.Candidacy
	testutil.AssertJSON(t, w, &candidacies)
	if len(candidacies) != 2 {
		t.Errorf("Expected 2 candidacies, got %d", len(candidacies))
	}

	// Registering X again conflicts
	register.StudentIDs = []int64{x.ID}
	w = serve(handler.RegisterCandidacies, authed(t, ap, "POST", "/candidacies", register))
	testutil.AssertStatus(t, w, http.StatusConflict)

	name := "Best Orator"
	w = serve(handler.Update, withID(authed(t, ap, "PUT", "/categories/x", models.UpdateCategoryRequest{Name: &name}), category.ID))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve(handler.Delete, withID(authed(t, ap, "DELETE", "/categories/x", nil), category.ID))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = serve(handler.Delete, withID(authed(t, ap, "DELETE", "/categories/x", nil), category.ID))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
