// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Campus Awards API server.

Campus Awards runs student elections: admins open time-boxed votes for a
group of students, register candidates in award categories, and students
cast one ballot per category. Results are sealed until the vote completes.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI
flags:

	DATABASE_URL=./awards.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -jwt-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): Secret for signing access tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL, SWEEP_INTERVAL, RESULTS_CACHE_TTL: durations
  - LOG_FILE, LOG_LEVEL: rotated JSON log file and level
  - CORS_ORIGIN: allowed origin

# Architecture

  - voting: Vote lifecycle, candidacies, ballots and results
  - store: SQL entity store shared by SQLite and PostgreSQL
  - handlers: HTTP request handlers over the voting service
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer tokens, rate limiting, JSON helpers
  - auth: Tokens and password hashing
  - models: Domain, request and response types, error kinds
  - metrics: Prometheus counters for ballots and the sweep
  - logging: slog setup with file rotation
  - db: Connection and schema creation
  - cliparse: Configuration parsing

A background sweeper advances votes from pending to active to completed
as their windows open and close.
*/
package main
