package model

import "time"

// Habit is a recurring behaviour the user tracks with a streak counter.
type Habit struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Frequency []string  `json:"frequency"`
	Streak    int       `json:"streak"`
	UserID    string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HabitPatch holds the fields of a partial habit update.
type HabitPatch struct {
	Name      *string   `json:"name"`
	Frequency *[]string `json:"frequency"`
	Streak    *int      `json:"streak"`
}

// Apply copies the set fields of p onto h. A negative streak is clamped
// to zero.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Frequency != nil {
		h.Frequency = *p.Frequency
	}
	if p.Streak != nil {
		h.Streak = max(*p.Streak, 0)
	}
}
