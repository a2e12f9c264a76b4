// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/campus-awards/cliparse"
	"github.com/danielhkuo/campus-awards/middleware"
	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/voting"
)

type BallotHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewBallotHandler(svc *voting.Service, cfg cliparse.Config) *BallotHandler {
	return &BallotHandler{svc: svc, cfg: cfg}
}

// Cast handles POST /ballots
// A repeated ballot answers 200 with already_voted set; the stored choice
// is returned unchanged.
func (h *BallotHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req models.CastBallotRequest
	if !decode(w, r, &req) {
		return
	}

	ballot, created, err := h.svc.CastBallot(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err, "Failed to cast ballot")
		return
	}

	if !created {
		middleware.JSONResponse(w, http.StatusOK, models.CastBallotResponse{
			Ballot:       ballot,
			AlreadyVoted: true,
			Message:      "You have already voted in this category",
		})
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		Ballot:  ballot,
		Message: "Ballot recorded",
	})
}

// Check handles POST /ballots/check
// Students may only ask about themselves.
func (h *BallotHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req models.CheckVotedRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if p.IsStudent() && p.ID != req.StudentID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Students can only check their own ballots")
		return
	}

	voted, err := h.svc.HasVoted(r.Context(), req.VoteID, req.StudentID)
	if err != nil {
		writeError(w, r, err, "Failed to check ballot")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CheckVotedResponse{HasVoted: voted})
}
