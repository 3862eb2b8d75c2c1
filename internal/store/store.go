package store

import (
	"context"
	"errors"
	"time"

	"github.com/nhle/smarttask/internal/model"
)

var (
	// ErrNotFound is returned when a row does not exist or is owned by
	// another user.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalid is wrapped by validation failures such as a blank title.
	ErrInvalid = errors.New("invalid")
)

// Store defines the persistence interface for users and the entities they
// own. Every owned entity method takes the owner's user ID and never reads
// or writes rows belonging to anyone else.
type Store interface {
	// === Users ===

	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id string, update model.ProfileUpdate) (*model.User, error)
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// === Tasks ===

	CreateTask(ctx context.Context, task model.Task) (*model.Task, error)
	ListTasks(ctx context.Context, owner string) ([]model.Task, error)
	GetTask(ctx context.Context, owner, id string) (*model.Task, error)
	UpdateTask(ctx context.Context, owner, id string, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, owner, id string) error

	// === Habits ===

	CreateHabit(ctx context.Context, habit model.Habit) (*model.Habit, error)
	ListHabits(ctx context.Context, owner string) ([]model.Habit, error)
	GetHabit(ctx context.Context, owner, id string) (*model.Habit, error)
	UpdateHabit(ctx context.Context, owner, id string, patch model.HabitPatch) (*model.Habit, error)
	DeleteHabit(ctx context.Context, owner, id string) error

	// === Journal ===

	CreateJournalEntry(ctx context.Context, entry model.JournalEntry) (*model.JournalEntry, error)
	ListJournalEntries(ctx context.Context, owner string) ([]model.JournalEntry, error)
	GetJournalEntry(ctx context.Context, owner, id string) (*model.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, owner, id string) error
}
