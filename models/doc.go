// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain types and error kinds.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest / SignInRequest: email, password
  - StudentLoginRequest: matricule
  - CreateStudentRequest: name, matricule, group_id
  - CreateGroupRequest: name, description
  - CreateVoteRequest: title, dates, group_id, optional categories
  - UpdateVoteRequest: partial vote update
  - CreateCategoryRequest / UpdateCategoryRequest
  - RegisterCandidaciesRequest: vote_id, category_id, student_ids
  - CastBallotRequest: vote_id, category_id, voter and candidate student ids
  - CheckVotedRequest: vote_id, student_id

# Domain Types

  - Admin, Group, Student
  - Vote: time-boxed election scoped to a group
  - Category: award within a vote
  - Candidacy: student registered as a choice in a category
  - Ballot: one voter's choice in one category
  - CategoryResult / Results: ranked tallies per category
  - Principal: authenticated caller (admin or student)

# Constants

Vote status values:

	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

Principal roles:

	RoleAdmin   = "admin"
	RoleStudent = "student"

# Errors

Every operation failure wraps one of:

	ErrNotFound, ErrUnauthorized, ErrForbidden,
	ErrValidation, ErrConflict, ErrInvalidState

KindOf(err) returns the wrapped kind, or nil for internal failures.
*/
package models
