// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-polls/models"
)

const questionColumns = "q.id, q.question_text, q.pub_date"

// hasChoices restricts a question query to questions with at least one choice.
const hasChoices = " AND EXISTS (SELECT 1 FROM choice c WHERE c.question_id = q.id)"

// listVisibleQuestions returns up to limit published questions, newest first.
// Admin viewers also see questions that have no choices.
func listVisibleQuestions(ctx context.Context, db *sql.DB, now time.Time, admin bool, limit int) ([]models.Question, error) {
	query := "SELECT " + questionColumns + " FROM question q WHERE q.pub_date <= $1"
	if !admin {
		query += hasChoices
	}
	query += " ORDER BY q.pub_date DESC, q.id DESC LIMIT $2"

	rows, err := db.QueryContext(ctx, query, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// getVisibleQuestion looks up a question under the same rules as
// listVisibleQuestions. Hidden questions report ErrQuestionNotFound.
func getVisibleQuestion(ctx context.Context, db *sql.DB, id string, now time.Time, admin bool) (models.Question, error) {
	query := "SELECT " + questionColumns + " FROM question q WHERE q.id = $1 AND q.pub_date <= $2"
	if !admin {
		query += hasChoices
	}

	var q models.Question
	err := db.QueryRowContext(ctx, query, id, now.UTC()).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, models.ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	return q, nil
}

// getQuestion looks up a question by id regardless of visibility.
func getQuestion(ctx context.Context, db *sql.DB, id string) (models.Question, error) {
	var q models.Question
	err := db.QueryRowContext(ctx,
		"SELECT "+questionColumns+" FROM question q WHERE q.id = $1", id,
	).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, models.ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	return q, nil
}

// listChoices returns the choices of a question in creation order.
func listChoices(ctx context.Context, db *sql.DB, questionID string) ([]models.Choice, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// incrementVotes adds one vote to a choice of the given question in a
// single statement. It reports ErrChoiceNotFound when the choice does not
// belong to the question.
func incrementVotes(ctx context.Context, db *sql.DB, questionID, choiceID string) error {
	res, err := db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrChoiceNotFound
	}

	return nil
}
