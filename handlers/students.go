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

type StudentHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewStudentHandler(svc *voting.Service, cfg cliparse.Config) *StudentHandler {
	return &StudentHandler{svc: svc, cfg: cfg}
}

// Create handles POST /students
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if !decode(w, r, &req) {
		return
	}

	student, err := h.svc.CreateStudent(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "Failed to create student")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, student)
}

// Import handles POST /students/bulk
func (h *StudentHandler) Import(w http.ResponseWriter, r *http.Request) {
	var rows []models.CreateStudentRequest
	if !decode(w, r, &rows) {
		return
	}

	report, err := h.svc.ImportStudents(r.Context(), middleware.PrincipalFrom(r.Context()), rows)
	if err != nil {
		writeError(w, r, err, "Failed to import students")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// Login handles POST /students/login. Students sign in with their
// matricule alone.
func (h *StudentHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.StudentLoginRequest
	if !decode(w, r, &req) {
		return
	}

	student, err := h.svc.LoginStudent(r.Context(), req.Matricule)
	if err != nil {
		writeError(w, r, err, "Failed to sign in")
		return
	}

	p := models.Principal{ID: student.ID, Role: models.RoleStudent, GroupID: student.GroupID}
	token, err := auth.IssueToken(p, h.cfg.JWTSecret, h.cfg.TokenTTL, time.Now())
	if err != nil {
		slog.Error("failed to issue token", "student_id", student.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StudentLoginResponse{
		Student:     student,
		AccessToken: token,
	})
}
