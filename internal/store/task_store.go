package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/smarttask/internal/model"
)

const taskColumns = "id, user_id, title, description, completed, created_at, updated_at"

// CreateTask inserts a new task. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateTask(ctx context.Context, task model.Task) (*model.Task, error) {
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, user_id, title, description, completed, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.UserID, task.Title, task.Description,
		boolToInt(task.Completed), task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &task, nil
}

// ListTasks returns all tasks owned by owner, newest first.
func (s *SQLiteStore) ListTasks(ctx context.Context, owner string) ([]model.Task, error) {
	tasks := []model.Task{}
	err := s.db.SelectContext(ctx, &tasks,
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = ? ORDER BY created_at DESC, rowid DESC",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a single task owned by owner.
func (s *SQLiteStore) GetTask(ctx context.Context, owner, id string) (*model.Task, error) {
	return getTask(ctx, s.db, owner, id)
}

// UpdateTask applies patch to a task owned by owner and returns the result.
func (s *SQLiteStore) UpdateTask(
	ctx context.Context,
	owner, id string,
	patch model.TaskPatch,
) (*model.Task, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	task, err := getTask(ctx, tx, owner, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(task)
	if err := validateTask(*task); err != nil {
		return nil, err
	}
	task.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, description = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		task.Title, task.Description, boolToInt(task.Completed), task.UpdatedAt,
		id, owner,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing task update: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task owned by owner.
func (s *SQLiteStore) DeleteTask(ctx context.Context, owner, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", id, owner,
	)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func getTask(ctx context.Context, q sqlx.QueryerContext, owner, id string) (*model.Task, error) {
	var task model.Task
	err := sqlx.GetContext(ctx, q, &task,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?", id, owner,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return &task, nil
}

func validateTask(task model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: task title must not be empty", ErrInvalid)
	}
	return nil
}
