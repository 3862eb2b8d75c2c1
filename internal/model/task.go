package model

import "time"

// Task is a single to-do item owned by one user.
type Task struct {
	// ID is the unique identifier for this task. It is serialized as "_id"
	// so existing web clients keep working.
	ID string `json:"_id" db:"id"`

	// Title is the short, human-readable summary. It must not be blank.
	Title string `json:"title" db:"title"`

	// Description is optional free text.
	Description string `json:"description" db:"description"`

	// Completed marks the task as done.
	Completed bool `json:"completed" db:"completed"`

	// UserID is the owner. Every query on tasks is scoped by it.
	UserID string `json:"user" db:"user_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// TaskPatch holds the fields of a partial task update. Nil fields are
// left unchanged.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Apply copies the set fields of p onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
