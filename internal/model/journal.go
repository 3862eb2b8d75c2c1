package model

import "time"

// JournalEntry is a free-text journal page. Content is usually HTML
// produced by the web editor.
type JournalEntry struct {
	ID        string    `json:"_id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Mood      string    `json:"mood" db:"mood"`
	UserID    string    `json:"user" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
