// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Error kinds. Operations wrap one of these; callers match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)

// Kinds lists every error kind, most specific first.
var Kinds = []error{
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
	ErrValidation,
	ErrConflict,
	ErrInvalidState,
}

// KindOf returns the kind err wraps, or nil for internal failures.
func KindOf(err error) error {
	for _, k := range Kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
