// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/web"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// ResultsURL is where a successful vote redirects to
func ResultsURL(questionID string) string {
	return "/polls/" + questionID + "/results/"
}

// Vote handles POST /polls/{id}/vote/
// The question is looked up by id alone; a missing or foreign choice
// re-renders the form with an error and records nothing.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	question, err := getQuestion(r.Context(), h.db, questionID)
	if errors.Is(err, models.ErrQuestionNotFound) {
		web.NotFound(w, "No question matches the given query.")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		web.ServerError(w)
		return
	}

	choiceID := r.PostFormValue("choice")
	if choiceID == "" {
		renderDetail(w, h.db, r, question, http.StatusOK, models.VoteErrorMessage)
		return
	}

	err = incrementVotes(r.Context(), h.db, question.ID, choiceID)
	if errors.Is(err, models.ErrChoiceNotFound) {
		slog.Info("vote for unknown choice", "question_id", question.ID, "choice_id", choiceID)
		renderDetail(w, h.db, r, question, http.StatusOK, models.VoteErrorMessage)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", question.ID)
		web.ServerError(w)
		return
	}

	slog.Info("vote recorded", "question_id", question.ID, "choice_id", choiceID)

	http.Redirect(w, r, ResultsURL(question.ID), http.StatusFound)
}
