// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/campus-awards/auth"
	"github.com/danielhkuo/campus-awards/cliparse"
	"github.com/danielhkuo/campus-awards/middleware"
	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/voting"
)

type AdminHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *voting.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// SignUp handles POST /admins/signup
func (h *AdminHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !decode(w, r, &req) {
		return
	}

	admin, err := h.svc.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, "Failed to create admin")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, admin)
}

// SignIn handles POST /admins/signin
func (h *AdminHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decode(w, r, &req) {
		return
	}

	admin, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, "Failed to sign in")
		return
	}

	token, err := auth.IssueToken(models.Principal{ID: admin.ID, Role: models.RoleAdmin}, h.cfg.JWTSecret, h.cfg.TokenTTL, time.Now())
	if err != nil {
		slog.Error("failed to issue token", "admin_id", admin.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	slog.Info("admin signed in", "admin_id", admin.ID)
	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		Message:     "Signed in",
	})
}

// Verify handles POST /admins/{id}/verify
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	admin, err := h.svc.VerifyAdmin(r.Context(), middleware.PrincipalFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, err, "Failed to verify admin")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, admin)
}
