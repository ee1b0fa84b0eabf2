// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-polls/auth"
	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/web"
)

type PollsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewPollsHandler(db *sql.DB, cfg cliparse.Config) *PollsHandler {
	return &PollsHandler{db: db, cfg: cfg, now: time.Now}
}

// Index handles GET /polls/
// Lists the most recently published questions
func (h *PollsHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	admin := auth.IsAdminViewer(r)

	questions, err := listVisibleQuestions(r.Context(), h.db, now, admin, models.IndexLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		web.ServerError(w)
		return
	}

	slog.Debug("index listed", "count", len(questions), "admin", admin)

	if err := web.Render(w, http.StatusOK, web.IndexPage, web.IndexData{
		Questions: questions,
		Now:       now,
	}); err != nil {
		slog.Error("failed to render index", "error", err)
		web.ServerError(w)
	}
}

// Detail handles GET /polls/{id}/
// Shows the voting form for a visible question
func (h *PollsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	question, err := getVisibleQuestion(r.Context(), h.db, questionID, h.now(), auth.IsAdminViewer(r))
	if errors.Is(err, models.ErrQuestionNotFound) {
		web.NotFound(w, "No question matches the given query.")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		web.ServerError(w)
		return
	}

	renderDetail(w, h.db, r, question, http.StatusOK, "")
}

// renderDetail renders the voting form for question, optionally with an error message
func renderDetail(w http.ResponseWriter, db *sql.DB, r *http.Request, question models.Question, status int, errorMessage string) {
	choices, err := listChoices(r.Context(), db, question.ID)
	if err != nil {
		slog.Error("failed to list choices", "error", err, "question_id", question.ID)
		web.ServerError(w)
		return
	}

	if err := web.Render(w, status, web.DetailPage, web.DetailData{
		Question:     question,
		Choices:      choices,
		ErrorMessage: errorMessage,
	}); err != nil {
		slog.Error("failed to render detail", "error", err)
		web.ServerError(w)
	}
}
