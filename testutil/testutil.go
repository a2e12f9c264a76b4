// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/campus-awards/auth"
	"github.com/danielhkuo/campus-awards/cliparse"
	"github.com/danielhkuo/campus-awards/db"
	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

// TestJWTSecret signs tokens in tests
const TestJWTSecret = "test-jwt-secret"

// SetupTestDB creates a fresh SQLite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     "file::memory:",
		DatabaseType:    db.TypeSQLite,
		JWTSecret:       TestJWTSecret,
		TokenTTL:        time.Hour,
		SweepInterval:   time.Minute,
		ResultsCacheTTL: time.Minute,
		LogLevel:        "info",
	}
}

// FakeClock is a settable clock for lifecycle tests.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: store.DBTime(now)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = store.DBTime(now)
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// CreateTestAdmin inserts a verified admin and returns it with its principal
func CreateTestAdmin(t *testing.T, conn *sql.DB, email string) (models.Admin, *models.Principal) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	admin, err := store.New(conn).CreateAdmin(context.Background(), email, hash, true, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return admin, &models.Principal{ID: admin.ID, Role: models.RoleAdmin}
}

// CreateTestGroup inserts a group owned by adminID
func CreateTestGroup(t *testing.T, conn *sql.DB, adminID int64, name string) models.Group {
	t.Helper()

	g, err := store.New(conn).CreateGroup(context.Background(), adminID, name, "test group", time.Now())
	if err != nil {
		t.Fatalf("Failed to create test group: %v", err)
	}
	return g
}

// CreateTestStudent inserts a student and returns it with its principal
func CreateTestStudent(t *testing.T, conn *sql.DB, groupID *int64, name, matricule string) (models.Student, *models.Principal) {
	t.Helper()

	s, err := store.New(conn).CreateStudent(context.Background(), name, matricule, groupID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return s, &models.Principal{ID: s.ID, Role: models.RoleStudent, GroupID: groupID}
}

// CreateTestVote inserts a vote with the given window and status
func CreateTestVote(t *testing.T, conn *sql.DB, adminID, groupID int64, status string, start, end time.Time) models.Vote {
	t.Helper()

	v, err := store.New(conn).CreateVote(context.Background(), models.Vote{
		Title:       "Test Vote",
		Description: "A test vote",
		StartDate:   start,
		EndDate:     end,
		Status:      status,
		GroupID:     groupID,
		AdminID:     adminID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	return v
}

// CreateTestCategory adds a category to a vote
func CreateTestCategory(t *testing.T, conn *sql.DB, voteID int64, name string) models.Category {
	t.Helper()

	c, err := store.New(conn).CreateCategory(context.Background(), voteID, name, name+" award")
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return c
}

// AddTestCandidacy registers a student as candidate, bypassing the pending check
func AddTestCandidacy(t *testing.T, conn *sql.DB, voteID, categoryID, studentID int64) models.Candidacy {
	t.Helper()

	c, err := store.New(conn).CreateCandidacy(context.Background(), voteID, categoryID, studentID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test candidacy: %v", err)
	}
	return c
}

// BearerToken issues a token for p signed with TestJWTSecret
func BearerToken(t *testing.T, p *models.Principal) string {
	t.Helper()

	token, err := auth.IssueToken(*p, TestJWTSecret, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return "Bearer " + token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
