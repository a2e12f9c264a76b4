// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /votes", middleware.WithLogging(handler))

Each request gets an id (client X-Request-ID or a fresh UUID), echoed in the
response and logged with the start and completion records. Completion also
logs the status code and duration_ms. Handlers read it with RequestID.

# Authentication

WithPrincipal turns an "Authorization: Bearer <jwt>" header into a
*models.Principal stored in the request context:

	mux.HandleFunc("POST /ballots", middleware.WithPrincipal(secret, handler))

	p := middleware.PrincipalFrom(r.Context()) // nil when anonymous

A missing header leaves the request anonymous; the voting core decides whether
the operation needs a principal. A malformed or expired token is a 401.

# Rate Limiting

RateLimiter keeps one token bucket per client IP:

	limiter := middleware.NewRateLimiter(rate.Every(time.Second), 5, salt)
	mux.HandleFunc("POST /admins/signin", limiter.Limit(handler))

Throttled requests get 429 with Retry-After. Client addresses are logged
hashed.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

An empty origin echoes the request's Origin header. Allows methods GET, POST,
PUT, DELETE, OPTIONS with headers Content-Type, Authorization, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

The rate limiter keys on the connection's peer address instead, via
RemoteIP, since forwarding headers are set by the client:

	ip := middleware.RemoteIP(r)
*/
package middleware
