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

const userColumns = `id, name, email, password_hash, profile_photo, role,
	reset_token, reset_token_expires_at, created_at, updated_at`

// CreateUser inserts a new user. Generates a UUID if ID is empty and
// defaults the role to model.RoleUser.
func (s *SQLiteStore) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (
			id, name, email, password_hash, profile_photo, role,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.ProfilePhoto,
		user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

// GetUserByEmail retrieves a user by email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

// GetUserByResetToken retrieves the user holding token, provided the token
// has not expired.
func (s *SQLiteStore) GetUserByResetToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	user, err := s.getUser(ctx, "reset_token = ?", token)
	if err != nil {
		return nil, err
	}
	if user.ResetTokenExpiresAt == nil || !user.ResetTokenExpiresAt.After(time.Now()) {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, args ...any) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE "+where, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// UpdateUserProfile replaces the editable profile fields of a user.
func (s *SQLiteStore) UpdateUserProfile(
	ctx context.Context,
	id string,
	update model.ProfileUpdate,
) (*model.User, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = ?, profile_photo = ?, updated_at = ? WHERE id = ?",
		update.Name, update.ProfilePhoto, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating user %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetUserByID(ctx, id)
}

// SetResetToken stores a password reset token for a user.
func (s *SQLiteStore) SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET reset_token = ?, reset_token_expires_at = ?, updated_at = ? WHERE id = ?",
		token, expiresAt.UTC(), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("setting reset token for user %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword replaces a user's password hash and clears any pending
// reset token.
func (s *SQLiteStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users SET
			password_hash = ?, reset_token = NULL, reset_token_expires_at = NULL,
			updated_at = ?
		WHERE id = ?`,
		passwordHash, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating password for user %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
