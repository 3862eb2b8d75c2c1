package model

import "time"

// Role constants.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account that owns tasks, habits and journal entries.
type User struct {
	ID                  string     `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Email               string     `json:"email" db:"email"`
	PasswordHash        string     `json:"-" db:"password_hash"`
	ProfilePhoto        string     `json:"profilePhoto" db:"profile_photo"`
	Role                string     `json:"role" db:"role"`
	ResetToken          *string    `json:"-" db:"reset_token"`
	ResetTokenExpiresAt *time.Time `json:"-" db:"reset_token_expires_at"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`
}

// ProfileUpdate holds the user-editable profile fields.
type ProfileUpdate struct {
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto"`
}
