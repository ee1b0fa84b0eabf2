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

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, now: time.Now}
}

// Results handles GET /polls/{id}/results/
// Shows the vote count of every choice. Visibility rules match Detail.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
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

	choices, err := listChoices(r.Context(), h.db, question.ID)
	if err != nil {
		slog.Error("failed to list choices", "error", err, "question_id", question.ID)
		web.ServerError(w)
		return
	}

	data := web.ResultsData{QuestionWithChoices: models.QuestionWithChoices{
		Question: question,
		Choices:  choices,
	}}
	if err := web.Render(w, http.StatusOK, web.ResultsPage, data); err != nil {
		slog.Error("failed to render results", "error", err)
		web.ServerError(w)
	}
}
