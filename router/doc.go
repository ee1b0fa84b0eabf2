// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public pages (HTML):

	GET  /polls/                 - Latest questions
	GET  /polls/{id}/            - Question detail and vote form
	GET  /polls/{id}/results/    - Vote counts
	POST /polls/{id}/vote/       - Submit a vote

Question authoring (JSON, X-Admin-Key except for creation):

	POST /admin/questions              - Create question
	GET  /admin/questions/{id}         - Question with choices and votes
	POST /admin/questions/{id}/choices - Add choice

GET / and GET /polls redirect to /polls/.

Page routes use {$} so that only the exact path matches; anything else
under /polls/ is a 404.
*/
package router
