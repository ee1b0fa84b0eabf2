// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/handlers"
	"github.com/danielhkuo/quickly-polls/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollsHandler := handlers.NewPollsHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollsHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollsHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(resultsHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(votingHandler.Vote))

	// Question authoring
	mux.HandleFunc("POST /admin/questions", middleware.WithLogging(adminHandler.CreateQuestion))
	mux.HandleFunc("GET /admin/questions/{id}", middleware.WithLogging(adminHandler.GetQuestion))
	mux.HandleFunc("POST /admin/questions/{id}/choices", middleware.WithLogging(adminHandler.AddChoice))

	// Root and /polls redirect to the index
	toIndex := http.RedirectHandler("/polls/", http.StatusFound)
	mux.Handle("GET /{$}", toIndex)
	mux.Handle("GET /polls", toIndex)

	return mux
}
