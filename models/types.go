// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

// RecentWindow is how long after publication a question counts as recent.
const RecentWindow = 24 * time.Hour

// IndexLimit is the number of questions shown on the index page.
const IndexLimit = 5

// VoteErrorMessage is shown when a vote is submitted without a valid choice.
const VoteErrorMessage = "You didn't select a choice."

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")
)

// Domain types

type Question struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question was published within
// RecentWindow before now. Questions dated in the future are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// IsPublished reports whether the publication date has been reached.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// TotalVotes sums the votes over all choices.
func (q QuestionWithChoices) TotalVotes() int {
	total := 0
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// Request types

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
	AdminKey   string `json:"admin_key"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
