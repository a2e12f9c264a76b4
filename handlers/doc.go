// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Campus Awards API.

# Handler Types

Each handler is a struct over the voting service and config:

  - AdminHandler: Admin sign up, sign in and verification
  - StudentHandler: Student creation, bulk import and login
  - GroupHandler: Student groups
  - VoteHandler: Vote lifecycle and listings
  - CategoryHandler: Award categories and candidacy registration
  - BallotHandler: Ballot casting and checks
  - ResultsHandler: Sealed results

Handlers are created via constructor functions:

	voteHandler := handlers.NewVoteHandler(svc, cfg)

# Authentication

Handlers read the caller from the request context, where
middleware.WithPrincipal puts the principal decoded from the bearer token.
The voting service decides what each role may do; handlers only map its
error kinds onto statuses:

	not found      → 404
	unauthorized   → 401
	forbidden      → 403
	validation     → 400
	conflict       → 409
	invalid state  → 409

Anything else is logged and answered with 500.

# Ballots

	POST /ballots → Cast

The first ballot for a (vote, category, voter) answers 201. Repeats answer
200 with already_voted set and the stored ballot, which never changes.

# Results

	GET /votes/{id}/results → GetResults

Admins can read results at any time. Students get 403 until the vote is
completed.
*/
package handlers
