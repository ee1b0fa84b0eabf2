// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-polls/models"
)

func TestVotesFunc(t *testing.T) {
	votes := funcs["votes"].(func(int) string)

	assert.Equal(t, "0 votes", votes(0))
	assert.Equal(t, "1 vote", votes(1))
	assert.Equal(t, "2 votes", votes(2))
	assert.Equal(t, "1,234 votes", votes(1234))
}

func TestSinceFunc(t *testing.T) {
	since := funcs["since"].(func(time.Time, time.Time) string)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 hours ago", since(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", since(now.Add(-48*time.Hour), now))
}

func TestRender_Index(t *testing.T) {
	now := time.Now()
	w := httptest.NewRecorder()

	err := Render(w, http.StatusOK, IndexPage, IndexData{
		Questions: []models.Question{
			{ID: "q1", QuestionText: "Fresh?", PubDate: now.Add(-time.Hour)},
			{ID: "q2", QuestionText: "Stale?", PubDate: now.Add(-72 * time.Hour)},
		},
		Now: now,
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, body, `href="/polls/q1/"`)
	assert.Contains(t, body, "published 1 hour ago")
	assert.Contains(t, body, "published 3 days ago")
	assert.Equal(t, 1, strings.Count(body, `class="new"`))
}

func TestRender_IndexEmpty(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, Render(w, http.StatusOK, IndexPage, IndexData{Now: time.Now()}))
	assert.Contains(t, w.Body.String(), "No polls are available.")
}

func TestRender_DetailWithError(t *testing.T) {
	w := httptest.NewRecorder()

	err := Render(w, http.StatusOK, DetailPage, DetailData{
		Question:     models.Question{ID: "q1", QuestionText: "<b>Bold?</b>"},
		Choices:      []models.Choice{{ID: "c1", ChoiceText: "Yes"}},
		ErrorMessage: models.VoteErrorMessage,
	})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, `action="/polls/q1/vote/"`)
	assert.Contains(t, body, `value="c1"`)
	assert.Contains(t, body, html.EscapeString(models.VoteErrorMessage))
	assert.Contains(t, body, "&lt;b&gt;Bold?&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Bold?</b>")
}

func TestRender_Results(t *testing.T) {
	w := httptest.NewRecorder()

	err := Render(w, http.StatusOK, ResultsPage, ResultsData{models.QuestionWithChoices{
		Question: models.Question{ID: "q1", QuestionText: "Tea?"},
		Choices: []models.Choice{
			{ChoiceText: "Yes", Votes: 1},
			{ChoiceText: "No", Votes: 2},
		},
	}})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "Yes -- 1 vote<")
	assert.Contains(t, body, "No -- 2 votes")
	assert.Contains(t, body, "Total: 3 votes")
	assert.Contains(t, body, `href="/polls/q1/"`)
}

func TestRender_UnknownPageWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()

	err := Render(w, http.StatusOK, "missing.html", nil)
	require.Error(t, err)
	assert.Empty(t, w.Body.String())
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	NotFound(w, "No question matches the given query.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No question matches the given query.")
}
