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

type ResultsHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *voting.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetResults handles GET /votes/{id}/results
// Admins can always read results. Students get 403 until the vote is
// completed (results are sealed while voting runs).
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if p == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	vote, err := h.svc.GetVote(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get results")
		return
	}
	if !p.IsAdmin() && vote.Status != models.StatusCompleted {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are sealed until the vote is completed")
		return
	}

	results, err := h.svc.ComputeResults(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get results")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}
