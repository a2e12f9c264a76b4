// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Campus Awards API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Admins and students (sign-in routes are rate limited per client IP):

	POST /admins/signup
	POST /admins/signin
	POST /admins/{id}/verify
	POST /students
	POST /students/bulk
	POST /students/login

Groups:

	GET    /groups
	POST   /groups
	GET    /groups/{id}
	GET    /groups/{id}/students
	DELETE /groups/{id}

Votes:

	POST   /votes
	GET    /votes?group_id=&status=
	GET    /votes/up-to-date?group_id=
	GET    /votes/{id}
	GET    /votes/{id}/details
	GET    /votes/{id}/categories
	GET    /votes/{id}/results
	PUT    /votes/{id}
	DELETE /votes/{id}

Categories, candidacies and ballots:

	POST   /categories
	PUT    /categories/{id}
	DELETE /categories/{id}
	POST   /candidacies
	POST   /ballots
	POST   /ballots/check

# Middleware

Every API route runs behind request logging. Routes other than sign-in
also resolve the bearer token: a missing token leaves the request
anonymous, a bad one is rejected with 401 before the handler runs.
*/
package router
