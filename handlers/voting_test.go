// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-polls/models"
	"github.com/danielhkuo/quickly-polls/testutil"
)

func postVote(t *testing.T, h *VotingHandler, questionID string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := testutil.MakeFormRequest("/polls/"+questionID+"/vote/", form)
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()
	h.Vote(w, req)
	return w
}

func TestVote_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Pick one", -1)
	c1 := testutil.AddTestChoice(t, db, q.ID, "One", 0)
	c2 := testutil.AddTestChoice(t, db, q.ID, "Two", 5)

	w := postVote(t, h, q.ID, url.Values{"choice": {c2.ID}})

	testutil.AssertStatus(t, w, http.StatusFound)
	assert.Equal(t, "/polls/"+q.ID+"/results/", w.Header().Get("Location"))
	assert.Equal(t, 6, testutil.GetVotes(t, db, c2.ID))
	assert.Equal(t, 0, testutil.GetVotes(t, db, c1.ID))
}

func TestVote_RepeatedVotesAccumulate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Again and again", -1)
	c := testutil.AddTestChoice(t, db, q.ID, "Me", 0)

	for i := 0; i < 3; i++ {
		testutil.AssertStatus(t, postVote(t, h, q.ID, url.Values{"choice": {c.ID}}), http.StatusFound)
	}

	assert.Equal(t, 3, testutil.GetVotes(t, db, c.ID))
}

func TestVote_InvalidChoice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Pick wisely", -1)
	c := testutil.AddTestChoice(t, db, q.ID, "The only choice", 2)

	other := testutil.CreateTestQuestion(t, db, "Another question", -1)
	foreign := testutil.AddTestChoice(t, db, other.ID, "Foreign choice", 0)

	testCases := []struct {
		name string
		form url.Values
	}{
		{"no choice field", url.Values{}},
		{"empty choice", url.Values{"choice": {""}}},
		{"unknown choice", url.Values{"choice": {"not-a-choice"}}},
		{"choice of another question", url.Values{"choice": {foreign.ID}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postVote(t, h, q.ID, tc.form)

			testutil.AssertStatus(t, w, http.StatusOK)
			body := w.Body.String()
			assert.Contains(t, body, html.EscapeString(models.VoteErrorMessage))
			assert.Contains(t, body, "Pick wisely")
			assert.Contains(t, body, "The only choice")
			assert.Empty(t, w.Header().Get("Location"))
		})
	}

	assert.Equal(t, 2, testutil.GetVotes(t, db, c.ID), "no state should be mutated")
	assert.Equal(t, 0, testutil.GetVotes(t, db, foreign.ID), "no state should be mutated")
}

func TestVote_QuestionNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	w := postVote(t, h, "missing-question", url.Values{"choice": {"anything"}})

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestVote_UnpublishedQuestionAcceptsVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Not yet public", 10)
	c := testutil.AddTestChoice(t, db, q.ID, "Early bird", 0)

	w := postVote(t, h, q.ID, url.Values{"choice": {c.ID}})

	testutil.AssertStatus(t, w, http.StatusFound)
	assert.Equal(t, 1, testutil.GetVotes(t, db, c.ID))
}

func TestVote_ConcurrentVotesAreNotLost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig())

	q := testutil.CreateTestQuestion(t, db, "Race", -1)
	c := testutil.AddTestChoice(t, db, q.ID, "Runner", 0)

	const voters = 20
	var wg sync.WaitGroup
	codes := make([]int, voters)

	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testutil.MakeFormRequest("/polls/"+q.ID+"/vote/", url.Values{"choice": {c.ID}})
			req.SetPathValue("id", q.ID)
			w := httptest.NewRecorder()
			h.Vote(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		require.Equal(t, http.StatusFound, code, "voter %d", i)
	}
	assert.Equal(t, voters, testutil.GetVotes(t, db, c.ID))
}
