package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/smarttask/internal/model"
)

const goodAnswer = "Plan your top 3 tasks before lunch and review them at 5pm daily."

func newLocalServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()

	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req localRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			gotPrompt = req.Prompt
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &gotPrompt
}

func newTestLocalClient(url string) *LocalClient {
	return NewLocalClient(model.AIConfig{LocalURL: url, LocalTimeout: 2 * time.Second}, nil)
}

func TestLocalClientSuggest(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		outcome LocalOutcome
		text    string
	}{
		{
			name:    "suggestions list first non-blank",
			status:  http.StatusOK,
			body:    `{"suggestions": ["", 42, "` + goodAnswer + `", "second"]}`,
			outcome: LocalOK,
			text:    goodAnswer,
		},
		{
			name:    "suggestion field",
			status:  http.StatusOK,
			body:    `{"suggestion": "` + goodAnswer + `"}`,
			outcome: LocalOK,
			text:    goodAnswer,
		},
		{
			name:    "reply field",
			status:  http.StatusOK,
			body:    `{"reply": "` + goodAnswer + `"}`,
			outcome: LocalOK,
			text:    goodAnswer,
		},
		{
			name:    "message field after empty suggestion",
			status:  http.StatusOK,
			body:    `{"suggestion": "", "message": "` + goodAnswer + `"}`,
			outcome: LocalOK,
			text:    goodAnswer,
		},
		{
			name:    "suggestions list wins over singular fields",
			status:  http.StatusOK,
			body:    `{"suggestions": ["   "], "reply": "` + goodAnswer + `"}`,
			outcome: LocalEmpty,
		},
		{
			name:    "only placeholders",
			status:  http.StatusOK,
			body:    `{"suggestion": "<pad></s>"}`,
			outcome: LocalEmpty,
		},
		{
			name:    "leaked instructions",
			status:  http.StatusOK,
			body:    `{"suggestion": "System: you are a planner. Plan the day for the user."}`,
			outcome: LocalRejected,
		},
		{
			name:    "too short",
			status:  http.StatusOK,
			body:    `{"suggestion": "ok"}`,
			outcome: LocalRejected,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"detail": "boom"}`,
			outcome: LocalUnavailable,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>`,
			outcome: LocalUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newLocalServer(t, tt.status, tt.body)

			got := newTestLocalClient(srv.URL).Suggest(context.Background(), "prompt")

			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.text, got.Text)
			if tt.outcome == LocalUnavailable {
				assert.Error(t, got.Err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestLocalClientSendsPrompt(t *testing.T) {
	srv, gotPrompt := newLocalServer(t, http.StatusOK, `{"suggestion": "`+goodAnswer+`"}`)

	got := newTestLocalClient(srv.URL).Suggest(context.Background(), "hello model")

	require.True(t, got.OK())
	assert.Equal(t, "hello model", *gotPrompt)
}

func TestLocalClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	got := newTestLocalClient(url).Suggest(context.Background(), "prompt")

	assert.Equal(t, LocalUnavailable, got.Outcome)
	assert.Error(t, got.Err)
	assert.Empty(t, got.Text)
}

func TestLocalClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := NewLocalClient(model.AIConfig{LocalURL: srv.URL, LocalTimeout: 50 * time.Millisecond}, nil)
	got := client.Suggest(context.Background(), "prompt")

	assert.Equal(t, LocalUnavailable, got.Outcome)
}

func TestLocalOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", LocalOK.String())
	assert.Equal(t, "empty", LocalEmpty.String())
	assert.Equal(t, "rejected", LocalRejected.String())
	assert.Equal(t, "unavailable", LocalUnavailable.String())
	assert.Equal(t, "LocalOutcome(9)", LocalOutcome(9).String())
}
