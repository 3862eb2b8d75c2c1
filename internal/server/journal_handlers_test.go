package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/smarttask/internal/model"
)

func TestJournalCRUD(t *testing.T) {
	s := newTestServer(t, nil)
	token := signup(t, s, "a@example.com")

	w := do(t, s, http.MethodPost, "/api/journal", gin.H{"content": "<p>Good day</p>", "mood": "happy"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.JournalEntry](t, w)
	assert.NotEmpty(t, created.Title)

	w = do(t, s, http.MethodGet, "/api/journal/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "happy", decode[model.JournalEntry](t, w).Mood)

	w = do(t, s, http.MethodGet, "/api/journal", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.JournalEntry](t, w), 1)

	w = do(t, s, http.MethodDelete, "/api/journal/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Entry deleted")

	w = do(t, s, http.MethodGet, "/api/journal/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJournalContentRequired(t *testing.T) {
	s := newTestServer(t, nil)
	token := signup(t, s, "a@example.com")

	w := do(t, s, http.MethodPost, "/api/journal", gin.H{"title": "Empty", "content": "   "}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content is required.")
}

func TestJournalOwnerScoping(t *testing.T) {
	s := newTestServer(t, nil)
	alice := signup(t, s, "alice@example.com")
	bob := signup(t, s, "bob@example.com")

	w := do(t, s, http.MethodPost, "/api/journal", gin.H{"content": "private"}, alice)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[model.JournalEntry](t, w).ID

	w = do(t, s, http.MethodGet, "/api/journal/"+id, nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
