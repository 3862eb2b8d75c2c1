package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/smarttask/internal/model"
)

func TestBuildPromptTaskBreakdown(t *testing.T) {
	got := BuildPrompt(model.SuggestRequest{
		Mode: model.ModeTaskBreakdown,
		Task: &model.SubjectItem{Title: "Plan launch"},
	})

	assert.Contains(t, got, "Break this task into 4-8 short, actionable steps")
	assert.Regexp(t, `(?s)Break this task into 4-8 short, actionable steps.*Plan launch$`, got)
}

func TestBuildPromptTaskBreakdownWithoutTask(t *testing.T) {
	got := BuildPrompt(model.SuggestRequest{Mode: model.ModeTaskBreakdown})
	assert.Contains(t, got, "Break this task into 4-8 short, actionable steps")
}

func TestBuildPromptTaskImprovement(t *testing.T) {
	got := BuildPrompt(model.SuggestRequest{
		Mode: model.ModeTaskImprovement,
		Tasks: []model.SubjectItem{
			{Title: "  Write report ", Description: "Q3 numbers"},
			{Name: "Call client"},
			{},
		},
	})

	assert.Contains(t, got, "Tasks:\n1. Write report — Q3 numbers\n2. Call client\n3. Task 3")
}

func TestBuildPromptTaskReorder(t *testing.T) {
	got := BuildPrompt(model.SuggestRequest{
		Mode: model.ModeTaskReorder,
		Tasks: []model.SubjectItem{
			{ID: "a", Title: " Write report "},
			{ID: "b"},
			{ID: "c", Name: "Call client"},
		},
	})

	assert.Contains(t, got, "Return ONLY the task titles")
	assert.Contains(t, got, "\n\nWrite report\nCall client")
	assert.NotContains(t, got, "1.")
}

func TestBuildPromptHabits(t *testing.T) {
	habits := []model.SubjectItem{{Name: "Meditate"}, {Title: "Run"}, {}}

	for _, mode := range []model.Mode{model.ModeHabitCoach, model.ModeHabitRoutine, model.ModeHabitDiscipline} {
		t.Run(string(mode), func(t *testing.T) {
			got := BuildPrompt(model.SuggestRequest{Mode: mode, Tasks: habits})
			assert.Contains(t, got, "1. Meditate\n2. Run\n3. Habit")
		})
	}
}

func TestBuildPromptJournal(t *testing.T) {
	tests := []struct {
		mode   model.Mode
		prefix string
	}{
		{model.ModeJournalSummary, "Summarize this journal entry"},
		{model.ModeJournalExtract, "From the journal entry below, extract any tasks"},
		{model.ModeJournalMood, "Analyze the emotional tone"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := BuildPrompt(model.SuggestRequest{Mode: tt.mode, Journal: "Long day at work."})
			assert.Contains(t, got, tt.prefix)
			assert.Contains(t, got, "\n\nLong day at work.")
		})
	}
}

func TestBuildPromptGeneral(t *testing.T) {
	withTasks := BuildPrompt(model.SuggestRequest{
		Mode:   model.ModeGeneral,
		Tasks:  []model.SubjectItem{{Title: "Email Bob"}},
		Prompt: "What first?",
	})
	assert.Contains(t, withTasks, "A user has the following tasks:\n1. Email Bob")
	assert.Contains(t, withTasks, "User request:\nWhat first?")

	withoutTasks := BuildPrompt(model.SuggestRequest{Mode: model.ModeGeneral, Prompt: "How do I focus?"})
	assert.Contains(t, withoutTasks, "Request:\nHow do I focus?")
}

func TestBuildPromptUnknownMode(t *testing.T) {
	got := BuildPrompt(model.SuggestRequest{Mode: "haiku", Prompt: "Write one"})
	assert.Equal(t, "Answer the following request in a concise, practical way:\n\nWrite one", got)

	got = BuildPrompt(model.SuggestRequest{})
	assert.Equal(t, "Answer the following request in a concise, practical way:\n\nGive a helpful response.", got)
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := model.SuggestRequest{
		Mode:  model.ModeTaskImprovement,
		Tasks: []model.SubjectItem{{Title: "A"}, {Title: "B"}},
	}
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}
