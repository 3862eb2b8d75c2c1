package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
	"github.com/nhle/smarttask/internal/testutil"
)

func TestJournalEntries(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, s, "a@example.com")

	older, err := s.CreateJournalEntry(ctx, model.JournalEntry{
		Title: "Monday", Content: "<p>Long day</p>", Mood: "tired", UserID: user.ID,
	})
	require.NoError(t, err)
	newer, err := s.CreateJournalEntry(ctx, model.JournalEntry{
		Title: "Tuesday", Content: "<p>Better</p>", Mood: "happy", UserID: user.ID,
	})
	require.NoError(t, err)

	entries, err := s.ListJournalEntries(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)

	got, err := s.GetJournalEntry(ctx, user.ID, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>Long day</p>", got.Content)
	assert.Equal(t, "tired", got.Mood)

	require.NoError(t, s.DeleteJournalEntry(ctx, user.ID, older.ID))
	_, err = s.GetJournalEntry(ctx, user.ID, older.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestJournalOwnerScoping(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, s, "alice@example.com")
	bob := testutil.CreateUser(t, s, "bob@example.com")

	entry, err := s.CreateJournalEntry(ctx, model.JournalEntry{Title: "Secret", UserID: alice.ID})
	require.NoError(t, err)

	_, err = s.GetJournalEntry(ctx, bob.ID, entry.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteJournalEntry(ctx, bob.ID, entry.ID), store.ErrNotFound)

	entries, err := s.ListJournalEntries(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
