// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote status constants
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Principal roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// ValidStatus reports whether s is one of the four vote statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Principal is the authenticated caller. The core trusts it as given.
type Principal struct {
	ID      int64  `json:"id"`
	Role    string `json:"role"`
	GroupID *int64 `json:"group_id,omitempty"`
}

func (p *Principal) IsAdmin() bool   { return p != nil && p.Role == RoleAdmin }
func (p *Principal) IsStudent() bool { return p != nil && p.Role == RoleStudent }

// Request types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest = SignUpRequest

type StudentLoginRequest struct {
	Matricule string `json:"matricule"`
}

type CreateStudentRequest struct {
	Name      string `json:"name"`
	Matricule string `json:"matricule"`
	GroupID   *int64 `json:"group_id,omitempty"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateVoteRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Status      string          `json:"status,omitempty"`
	GroupID     int64           `json:"group_id"`
	Categories  []CategoryInput `json:"categories,omitempty"`
}

// UpdateVoteRequest carries a partial update; nil fields are left unchanged.
type UpdateVoteRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

type CreateCategoryRequest struct {
	VoteID      int64  `json:"vote_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type RegisterCandidaciesRequest struct {
	VoteID     int64   `json:"vote_id"`
	CategoryID int64   `json:"category_id"`
	StudentIDs []int64 `json:"student_ids"`
}

type CastBallotRequest struct {
	VoteID             int64 `json:"vote_id"`
	CategoryID         int64 `json:"category_id"`
	VoterStudentID     int64 `json:"voter_student_id"`
	CandidateStudentID int64 `json:"candidate_student_id"`
}

type CheckVotedRequest struct {
	VoteID    int64 `json:"vote_id"`
	StudentID int64 `json:"student_id"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

type StudentLoginResponse struct {
	Student     Student `json:"student"`
	AccessToken string  `json:"access_token"`
}

type CastBallotResponse struct {
	Ballot       Ballot `json:"ballot"`
	AlreadyVoted bool   `json:"already_voted"`
	Message      string `json:"message"`
}

type CheckVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type ImportReport struct {
	Created        int `json:"created_count"`
	Updated        int `json:"updated_count"`
	TotalProcessed int `json:"total_processed"`
}

// VoteSummary is a vote as listed to students, with a human readable deadline.
type VoteSummary struct {
	Vote
	Closes string `json:"closes"`
}

// Domain types

type Admin struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AdminID     int64     `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Matricule string    `json:"matricule"`
	GroupID   *int64    `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	GroupID     int64     `json:"group_id"`
	AdminID     int64     `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID          int64  `json:"id"`
	VoteID      int64  `json:"vote_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Candidacy struct {
	ID         int64     `json:"id"`
	VoteID     int64     `json:"vote_id"`
	CategoryID int64     `json:"category_id"`
	StudentID  int64     `json:"student_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// CandidateDetail is a candidacy joined with its student.
type CandidateDetail struct {
	CandidacyID int64  `json:"candidacy_id"`
	StudentID   int64  `json:"student_id"`
	Name        string `json:"name"`
	Matricule   string `json:"matricule"`
}

type CategoryWithCandidates struct {
	Category
	Candidates []CandidateDetail `json:"candidates"`
}

type VoteDetails struct {
	Vote       Vote                     `json:"vote"`
	Categories []CategoryWithCandidates `json:"categories"`
}

type Ballot struct {
	ID                 int64     `json:"id"`
	VoteID             int64     `json:"vote_id"`
	CategoryID         int64     `json:"category_id"`
	VoterStudentID     int64     `json:"voter_student_id"`
	CandidateStudentID int64     `json:"candidate_student_id"`
	CastAt             time.Time `json:"cast_at"`
}

// Result types

type CandidateResult struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Matricule string `json:"matricule"`
	VoteCount int    `json:"vote_count"`
}

type CategoryResult struct {
	CategoryID   int64             `json:"category_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Candidates   []CandidateResult `json:"candidates"` // count desc, then student id asc
	TotalBallots int               `json:"total_ballots"`
}

// Results maps category id to its tally. Categories without ballots are absent.
type Results map[int64]*CategoryResult

type SweepReport struct {
	Examined  int `json:"examined"`
	Activated int `json:"activated"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
