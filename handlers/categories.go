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

// CategoryHandler manages award categories and the candidacies in them.
type CategoryHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewCategoryHandler(svc *voting.Service, cfg cliparse.Config) *CategoryHandler {
	return &CategoryHandler{svc: svc, cfg: cfg}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if !decode(w, r, &req) {
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err, "Failed to create category")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, category)
}

// Update handles PUT /categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if !decode(w, r, &req) {
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), middleware.PrincipalFrom(r.Context()), id, req)
	if err != nil {
		writeError(w, r, err, "Failed to update category")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, category)
}

// Delete handles DELETE /categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), middleware.PrincipalFrom(r.Context()), id); err != nil {
		writeError(w, r, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterCandidacies handles POST /candidacies
func (h *CategoryHandler) RegisterCandidacies(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidaciesRequest
	if !decode(w, r, &req) {
		return
	}

	candidacies, err := h.svc.RegisterCandidacies(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err, "Failed to register candidacies")
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, candidacies)
}
