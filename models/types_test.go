// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"future question", now.Add(30 * 24 * time.Hour), false},
		{"older than one day", now.Add(-24*time.Hour - time.Second), false},
		{"one second ago", now.Add(-time.Second), true},
		{"exactly one day ago", now.Add(-24 * time.Hour), true},
		{"published now", now, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{PubDate: tc.pubDate}
			assert.Equal(t, tc.want, q.WasPublishedRecently(now))
		})
	}
}

func TestIsPublished(t *testing.T) {
	now := time.Now()

	assert.True(t, Question{PubDate: now.Add(-time.Hour)}.IsPublished(now))
	assert.True(t, Question{PubDate: now}.IsPublished(now))
	assert.False(t, Question{PubDate: now.Add(time.Minute)}.IsPublished(now))
}

func TestTotalVotes(t *testing.T) {
	q := QuestionWithChoices{
		Choices: []Choice{{Votes: 3}, {Votes: 0}, {Votes: 4}},
	}
	assert.Equal(t, 7, q.TotalVotes())
	assert.Equal(t, 0, QuestionWithChoices{}.TotalVotes())
}
