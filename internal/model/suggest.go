package model

// Mode selects the prompt template and response shape of a suggestion
// request.
type Mode string

const (
	ModeTaskImprovement Mode = "task_improvement"
	ModeTaskReorder     Mode = "task_reorder"
	ModeTaskBreakdown   Mode = "task_breakdown"
	ModeHabitCoach      Mode = "habit_coach"
	ModeHabitRoutine    Mode = "habit_routine"
	ModeHabitDiscipline Mode = "habit_discipline"
	ModeJournalSummary  Mode = "journal_summary"
	ModeJournalExtract  Mode = "journal_extract"
	ModeJournalMood     Mode = "journal_mood"
	ModeGeneral         Mode = "general"
)

// SubjectItem is a task- or habit-like record sent by the client as the
// subject of a suggestion. Every field is optional.
type SubjectItem struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Streak      int    `json:"streak,omitempty"`
}

// Label returns the title, falling back to the name.
func (s SubjectItem) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}

// SuggestRequest is the body of a suggestion request. It is never
// persisted.
type SuggestRequest struct {
	Mode    Mode          `json:"mode"`
	Tasks   []SubjectItem `json:"tasks"`
	Task    *SubjectItem  `json:"task"`
	Prompt  string        `json:"prompt"`
	Journal string        `json:"journal"`
}
