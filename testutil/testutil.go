// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/db"
	"github.com/danielhkuo/quickly-polls/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestQuestion creates a question published the given number of days
// from now (negative for the past, positive for the future).
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days int) models.Question {
	t.Helper()
	return CreateTestQuestionAt(t, conn, text, time.Now().AddDate(0, 0, days))
}

// CreateTestQuestionAt creates a question with an explicit publication date
func CreateTestQuestionAt(t *testing.T, conn *sql.DB, text string, pubDate time.Time) models.Question {
	t.Helper()

	q := models.Question{
		ID:           db.NewID(),
		QuestionText: text,
		PubDate:      pubDate.UTC(),
	}
	if err := db.InsertQuestion(context.Background(), conn, q); err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// AddTestChoice adds a choice with the given vote count to a question
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, text string, votes int) models.Choice {
	t.Helper()

	c := models.Choice{
		ID:         db.NewID(),
		QuestionID: questionID,
		ChoiceText: text,
		Votes:      votes,
	}
	if err := db.InsertChoice(context.Background(), conn, c); err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c
}

// GetVotes reads the current vote count of a choice
func GetVotes(t *testing.T, conn *sql.DB, choiceID string) int {
	t.Helper()

	var votes int
	if err := conn.QueryRow("SELECT votes FROM choice WHERE id = $1", choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}

	return votes
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a POST request with a url-encoded form body
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AsAdmin attaches a sessionid cookie to the request
func AsAdmin(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: "test-session"})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
