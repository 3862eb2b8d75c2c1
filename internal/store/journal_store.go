package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/smarttask/internal/model"
)

const journalColumns = "id, user_id, title, content, mood, created_at, updated_at"

// CreateJournalEntry inserts a new journal entry. Generates a UUID if ID is
// empty.
func (s *SQLiteStore) CreateJournalEntry(
	ctx context.Context,
	entry model.JournalEntry,
) (*model.JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal_entries (
			id, user_id, title, content, mood, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Mood,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating journal entry: %w", err)
	}
	return &entry, nil
}

// ListJournalEntries returns all entries owned by owner, newest first.
func (s *SQLiteStore) ListJournalEntries(ctx context.Context, owner string) ([]model.JournalEntry, error) {
	entries := []model.JournalEntry{}
	err := s.db.SelectContext(ctx, &entries,
		"SELECT "+journalColumns+" FROM journal_entries WHERE user_id = ? ORDER BY created_at DESC, rowid DESC",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	return entries, nil
}

// GetJournalEntry retrieves a single entry owned by owner.
func (s *SQLiteStore) GetJournalEntry(ctx context.Context, owner, id string) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := s.db.GetContext(ctx, &entry,
		"SELECT "+journalColumns+" FROM journal_entries WHERE id = ? AND user_id = ?", id, owner,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting journal entry %s: %w", id, err)
	}
	return &entry, nil
}

// DeleteJournalEntry removes an entry owned by owner.
func (s *SQLiteStore) DeleteJournalEntry(ctx context.Context, owner, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM journal_entries WHERE id = ? AND user_id = ?", id, owner,
	)
	if err != nil {
		return fmt.Errorf("deleting journal entry %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
