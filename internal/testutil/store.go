package testutil

import (
	"context"
	"testing"

	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// CreateUser inserts a user with the given email and a placeholder
// password hash.
func CreateUser(t *testing.T, s store.Store, email string) *model.User {
	t.Helper()

	user, err := s.CreateUser(context.Background(), model.User{
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: "not-a-real-hash",
	})
	if err != nil {
		t.Fatalf("creating test user %s: %v", email, err)
	}
	return user
}
