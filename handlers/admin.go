// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-polls/auth"
	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, now: time.Now}
}

// CreateQuestion handles POST /admin/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	question := models.Question{
		ID:           db.NewID(),
		QuestionText: text,
		PubDate:      pubDate.UTC(),
	}

	if err := db.InsertQuestion(r.Context(), h.db, question); err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", question.ID, "pub_date", question.PubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: question.ID,
		AdminKey:   auth.GenerateAdminKey(question.ID, h.cfg.AdminKeySalt),
	})
}

// authorize validates the admin key for the question in the path.
// It writes the error response and returns false when the key is wrong.
func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return "", false
	}

	adminKey := r.Header.Get(auth.AdminKeyHeader)
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}

	return questionID, true
}

// GetQuestion handles GET /admin/questions/{id}
// Returns the question with all choices and votes, ignoring visibility
func (h *AdminHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	question, err := getQuestion(r.Context(), h.db, questionID)
	if errors.Is(err, models.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := listChoices(r.Context(), h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: question,
		Choices:  choices,
	})
}

// AddChoice handles POST /admin/questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.ChoiceText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
		return
	}

	// Check question exists
	_, err := getQuestion(r.Context(), h.db, questionID)
	if errors.Is(err, models.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choice := models.Choice{
		ID:         db.NewID(),
		QuestionID: questionID,
		ChoiceText: text,
	}
	if err := db.InsertChoice(r.Context(), h.db, choice); err != nil {
		slog.Error("failed to insert choice", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choice.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choice.ID,
	})
}
