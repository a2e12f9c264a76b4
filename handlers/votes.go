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

type VoteHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVoteHandler(svc *voting.Service, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{svc: svc, cfg: cfg}
}

// Create handles POST /votes
func (h *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoteRequest
	if !decode(w, r, &req) {
		return
	}

	details, err := h.svc.CreateVote(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err, "Failed to create vote")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, details)
}

// List handles GET /votes?group_id=&status=
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID, err := queryID(r, "group_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	votes, err := h.svc.ListVotes(r.Context(), groupID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err, "Failed to list votes")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, votes)
}

// UpToDate handles GET /votes/up-to-date?group_id=. Students without an
// explicit filter see their own group's votes.
func (h *VoteHandler) UpToDate(w http.ResponseWriter, r *http.Request) {
	groupID, err := queryID(r, "group_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if p := middleware.PrincipalFrom(r.Context()); groupID == nil && p.IsStudent() {
		groupID = p.GroupID
	}

	votes, err := h.svc.ListUpToDateVotes(r.Context(), groupID)
	if err != nil {
		writeError(w, r, err, "Failed to list votes")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, votes)
}

// Get handles GET /votes/{id}
func (h *VoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	vote, err := h.svc.GetVote(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get vote")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, vote)
}

// Details handles GET /votes/{id}/details
func (h *VoteHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	details, err := h.svc.VoteDetails(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get vote")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, details)
}

// Categories handles GET /votes/{id}/categories
func (h *VoteHandler) Categories(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	categories, err := h.svc.ListCategories(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to list categories")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// Update handles PUT /votes/{id}
func (h *VoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateVoteRequest
	if !decode(w, r, &req) {
		return
	}

	vote, err := h.svc.UpdateVote(r.Context(), middleware.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		writeError(w, r, err, "Failed to update vote")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, vote)
}

// Delete handles DELETE /votes/{id}
func (h *VoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteVote(r.Context(), middleware.PrincipalFrom(r.Context()), id); err != nil {
		writeError(w, r, err, "Failed to delete vote")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
