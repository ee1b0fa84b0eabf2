// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls site.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollsHandler: question index and detail pages
  - ResultsHandler: vote counts per choice
  - VotingHandler: vote submission
  - AdminHandler: JSON API for creating questions and choices

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollsHandler := handlers.NewPollsHandler(db, cfg)

# Visibility

A question is listed, and its detail and results pages are served, only
when it is published (pub_date <= now) and has at least one choice.
Requests carrying a sessionid cookie see every published question,
including those without choices. Hidden questions answer 404.

The index shows at most models.IndexLimit questions, newest first.

# Voting

	POST /polls/{id}/vote/   choice=<choice id>

The question is looked up by id only. A missing or unknown choice
re-renders the detail page with models.VoteErrorMessage. A valid vote is
recorded with a single UPDATE ... SET votes = votes + 1 and redirects to
the results page with 302 Found.

# Admin API

	POST /admin/questions              → CreateQuestion (returns admin_key)
	GET  /admin/questions/{id}         → GetQuestion
	POST /admin/questions/{id}/choices → AddChoice

Everything except CreateQuestion requires the X-Admin-Key header.
*/
package handlers
