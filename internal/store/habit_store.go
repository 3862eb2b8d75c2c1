package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/smarttask/internal/model"
)

const habitColumns = "id, user_id, name, frequency, streak, created_at, updated_at"

// habitRow is the stored form of a habit; frequency is a JSON array.
type habitRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Frequency string    `db:"frequency"`
	Streak    int       `db:"streak"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r habitRow) toModel() (model.Habit, error) {
	h := model.Habit{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Frequency: []string{},
		Streak:    r.Streak,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Frequency != "" {
		if err := json.Unmarshal([]byte(r.Frequency), &h.Frequency); err != nil {
			return model.Habit{}, fmt.Errorf("unmarshaling frequency of habit %s: %w", r.ID, err)
		}
	}
	return h, nil
}

// CreateHabit inserts a new habit. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateHabit(ctx context.Context, habit model.Habit) (*model.Habit, error) {
	if err := validateHabit(habit); err != nil {
		return nil, err
	}
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.Frequency == nil {
		habit.Frequency = []string{}
	}
	habit.Streak = max(habit.Streak, 0)
	now := time.Now().UTC()
	habit.CreatedAt = now
	habit.UpdatedAt = now

	frequency, err := json.Marshal(habit.Frequency)
	if err != nil {
		return nil, fmt.Errorf("marshaling frequency: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO habits (
			id, user_id, name, frequency, streak, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.UserID, habit.Name, string(frequency), habit.Streak,
		habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating habit: %w", err)
	}
	return &habit, nil
}

// ListHabits returns all habits owned by owner, newest first.
func (s *SQLiteStore) ListHabits(ctx context.Context, owner string) ([]model.Habit, error) {
	var rows []habitRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+habitColumns+" FROM habits WHERE user_id = ? ORDER BY created_at DESC, rowid DESC",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}

	habits := make([]model.Habit, 0, len(rows))
	for _, r := range rows {
		h, err := r.toModel()
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, nil
}

// GetHabit retrieves a single habit owned by owner.
func (s *SQLiteStore) GetHabit(ctx context.Context, owner, id string) (*model.Habit, error) {
	return getHabit(ctx, s.db, owner, id)
}

// UpdateHabit applies patch to a habit owned by owner and returns the
// result.
func (s *SQLiteStore) UpdateHabit(
	ctx context.Context,
	owner, id string,
	patch model.HabitPatch,
) (*model.Habit, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	habit, err := getHabit(ctx, tx, owner, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(habit)
	if err := validateHabit(*habit); err != nil {
		return nil, err
	}
	if habit.Frequency == nil {
		habit.Frequency = []string{}
	}
	habit.UpdatedAt = time.Now().UTC()

	frequency, err := json.Marshal(habit.Frequency)
	if err != nil {
		return nil, fmt.Errorf("marshaling frequency: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE habits SET
			name = ?, frequency = ?, streak = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		habit.Name, string(frequency), habit.Streak, habit.UpdatedAt,
		id, owner,
	)
	if err != nil {
		return nil, fmt.Errorf("updating habit %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing habit update: %w", err)
	}
	return habit, nil
}

// DeleteHabit removes a habit owned by owner.
func (s *SQLiteStore) DeleteHabit(ctx context.Context, owner, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM habits WHERE id = ? AND user_id = ?", id, owner,
	)
	if err != nil {
		return fmt.Errorf("deleting habit %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func getHabit(ctx context.Context, q sqlx.QueryerContext, owner, id string) (*model.Habit, error) {
	var row habitRow
	err := sqlx.GetContext(ctx, q, &row,
		"SELECT "+habitColumns+" FROM habits WHERE id = ? AND user_id = ?", id, owner,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting habit %s: %w", id, err)
	}

	habit, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func validateHabit(habit model.Habit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return fmt.Errorf("%w: habit name must not be empty", ErrInvalid)
	}
	return nil
}
