// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-polls/models"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertQuestion stores q. Timestamps are written in UTC so SQLite's
// text comparison orders them correctly.
func InsertQuestion(ctx context.Context, ex Execer, q models.Question) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, q.ID, q.QuestionText, q.PubDate.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// InsertChoice stores c with its current vote count.
func InsertChoice(ctx context.Context, ex Execer, c models.Choice) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, $4)
	`, c.ID, c.QuestionID, c.ChoiceText, c.Votes)
	if err != nil {
		return fmt.Errorf("failed to insert choice: %w", err)
	}
	return nil
}

// NewID returns a time-ordered UUIDv7 string, so ORDER BY id follows
// insertion order on every supported database.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
