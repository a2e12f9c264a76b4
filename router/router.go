// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/danielhkuo/campus-awards/cliparse"
	"github.com/danielhkuo/campus-awards/handlers"
	"github.com/danielhkuo/campus-awards/middleware"
	"github.com/danielhkuo/campus-awards/voting"
)

// Sign-in budget per client IP
const (
	signInRate  = rate.Limit(1)
	signInBurst = 5
)

func NewRouter(svc *voting.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(svc, cfg)
	studentHandler := handlers.NewStudentHandler(svc, cfg)
	groupHandler := handlers.NewGroupHandler(svc, cfg)
	voteHandler := handlers.NewVoteHandler(svc, cfg)
	categoryHandler := handlers.NewCategoryHandler(svc, cfg)
	ballotHandler := handlers.NewBallotHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)

	limiter := middleware.NewRateLimiter(signInRate, signInBurst, cfg.JWTSecret)

	// route logs the request and resolves its bearer token
	route := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithPrincipal(cfg.JWTSecret, h))
	}
	limited := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(limiter.Limit(h))
	}

	// Health check and metrics
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Admins
	mux.HandleFunc("POST /admins/signup", limited(adminHandler.SignUp))
	mux.HandleFunc("POST /admins/signin", limited(adminHandler.SignIn))
	mux.HandleFunc("POST /admins/{id}/verify", route(adminHandler.Verify))

	// Students
	mux.HandleFunc("POST /students", route(studentHandler.Create))
	mux.HandleFunc("POST /students/bulk", route(studentHandler.Import))
	mux.HandleFunc("POST /students/login", limited(studentHandler.Login))

	// Groups
	mux.HandleFunc("GET /groups", route(groupHandler.List))
	mux.HandleFunc("POST /groups", route(groupHandler.Create))
	mux.HandleFunc("GET /groups/{id}", route(groupHandler.Get))
	mux.HandleFunc("GET /groups/{id}/students", route(groupHandler.Students))
	mux.HandleFunc("DELETE /groups/{id}", route(groupHandler.Delete))

	// Votes
	mux.HandleFunc("POST /votes", route(voteHandler.Create))
	mux.HandleFunc("GET /votes", route(voteHandler.List))
	mux.HandleFunc("GET /votes/up-to-date", route(voteHandler.UpToDate))
	mux.HandleFunc("GET /votes/{id}", route(voteHandler.Get))
	mux.HandleFunc("GET /votes/{id}/details", route(voteHandler.Details))
	mux.HandleFunc("GET /votes/{id}/categories", route(voteHandler.Categories))
	mux.HandleFunc("PUT /votes/{id}", route(voteHandler.Update))
	mux.HandleFunc("DELETE /votes/{id}", route(voteHandler.Delete))

	// Results (sealed for students until the vote is completed)
	mux.HandleFunc("GET /votes/{id}/results", route(resultsHandler.GetResults))

	// Categories and candidacies
	mux.HandleFunc("POST /categories", route(categoryHandler.Create))
	mux.HandleFunc("PUT /categories/{id}", route(categoryHandler.Update))
	mux.HandleFunc("DELETE /categories/{id}", route(categoryHandler.Delete))
	mux.HandleFunc("POST /candidacies", route(categoryHandler.RegisterCandidacies))

	// Ballots
	mux.HandleFunc("POST /ballots", route(ballotHandler.Cast))
	mux.HandleFunc("POST /ballots/check", route(ballotHandler.Check))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("campus-awards API v1"))
	})

	return mux
}
