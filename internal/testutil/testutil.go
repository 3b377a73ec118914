// Package testutil provides small helpers shared across package tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"genie-scoreboard-service/internal/domain"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// Serve executes a request against the provided handler and returns the
// recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// SampleRubric returns a minimal rubric fixture with the provided id.
func SampleRubric(id string, order int) domain.Rubric {
	return domain.Rubric{
		ID:    id,
		Title: "Rubrique " + id,
		Order: order,
		Questions: []domain.Question{
			{
				ID:   id + "-q1",
				Type: domain.QuestionSingleAnswer,
				Text: "Question test ?",
				Answers: []domain.Answer{
					{Text: "Bonne réponse", Correct: true},
					{Text: "Mauvaise réponse"},
				},
			},
		},
	}
}
