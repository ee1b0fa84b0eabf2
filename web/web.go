// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-polls/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	IndexPage    = "index.html"
	DetailPage   = "detail.html"
	ResultsPage  = "results.html"
	NotFoundPage = "404.html"
)

var funcs = template.FuncMap{
	// since renders "3 hours ago" relative to the request time.
	"since": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"votes": func(n int) string {
		if n == 1 {
			return "1 vote"
		}
		return humanize.Comma(int64(n)) + " votes"
	},
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

type IndexData struct {
	Questions []models.Question
	Now       time.Time
}

type DetailData struct {
	Question     models.Question
	Choices      []models.Choice
	ErrorMessage string
}

type ResultsData struct {
	models.QuestionWithChoices
}

// Render executes the named page into a buffer and writes it with status.
// Nothing is written to w if execution fails.
func Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to write page", "page", name, "error", err)
	}
	return nil
}

// NotFound renders the 404 page, falling back to plain text.
func NotFound(w http.ResponseWriter, message string) {
	if err := Render(w, http.StatusNotFound, NotFoundPage, message); err != nil {
		slog.Error("failed to render not found page", "error", err)
		http.Error(w, message, http.StatusNotFound)
	}
}

// ServerError writes a generic 500 page.
func ServerError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
