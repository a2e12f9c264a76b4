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

type GroupHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewGroupHandler(svc *voting.Service, cfg cliparse.Config) *GroupHandler {
	return &GroupHandler{svc: svc, cfg: cfg}
}

// List handles GET /groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to list groups")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, groups)
}

// Get handles GET /groups/{id}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	group, err := h.svc.GetGroup(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to get group")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, group)
}

// Students handles GET /groups/{id}/students
func (h *GroupHandler) Students(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	students, err := h.svc.GroupStudents(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to list students")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, students)
}

// Create handles POST /groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if !decode(w, r, &req) {
		return
	}

	group, err := h.svc.CreateGroup(r.Context(), middleware.PrincipalFrom(r.Context()), req.Name, req.Description)
	if err != nil {
		writeError(w, r, err, "Failed to create group")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, group)
}

// Delete handles DELETE /groups/{id}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGroup(r.Context(), middleware.PrincipalFrom(r.Context()), id); err != nil {
		writeError(w, r, err, "Failed to delete group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
