// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-polls/models"
)

// Fixture is the YAML document accepted by LoadFixtures.
type Fixture struct {
	Questions []QuestionFixture `yaml:"questions"`
}

type QuestionFixture struct {
	Text string `yaml:"text"`
	// Days offsets the publication date from now; negative is the past.
	Days    int             `yaml:"days"`
	PubDate *time.Time      `yaml:"pub_date"`
	Choices []ChoiceFixture `yaml:"choices"`
}

type ChoiceFixture struct {
	Text  string `yaml:"text"`
	Votes int    `yaml:"votes"`
}

// ParseFixture decodes and validates a fixture document.
func ParseFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, nil
		}
		return Fixture{}, fmt.Errorf("failed to parse fixture: %w", err)
	}

	for i, q := range f.Questions {
		if q.Text == "" {
			return Fixture{}, fmt.Errorf("question %d: text is required", i+1)
		}
		for j, c := range q.Choices {
			if c.Text == "" {
				return Fixture{}, fmt.Errorf("question %d choice %d: text is required", i+1, j+1)
			}
			if c.Votes < 0 {
				return Fixture{}, fmt.Errorf("question %d choice %d: votes cannot be negative", i+1, j+1)
			}
		}
	}

	return f, nil
}

// publishedAt returns the absolute publication date relative to now.
func (q QuestionFixture) publishedAt(now time.Time) time.Time {
	if q.PubDate != nil {
		return *q.PubDate
	}
	return now.AddDate(0, 0, q.Days)
}

// LoadFixtures inserts every question and choice of the fixture in one
// transaction and returns the number of questions created.
func LoadFixtures(ctx context.Context, conn *sql.DB, r io.Reader, now time.Time) (int, error) {
	f, err := ParseFixture(r)
	if err != nil {
		return 0, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, qf := range f.Questions {
		q := models.Question{
			ID:           NewID(),
			QuestionText: qf.Text,
			PubDate:      qf.publishedAt(now),
		}
		if err := InsertQuestion(ctx, tx, q); err != nil {
			return 0, err
		}

		for _, cf := range qf.Choices {
			c := models.Choice{
				ID:         NewID(),
				QuestionID: q.ID,
				ChoiceText: cf.Text,
				Votes:      cf.Votes,
			}
			if err := InsertChoice(ctx, tx, c); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit fixtures: %w", err)
	}

	return len(f.Questions), nil
}
