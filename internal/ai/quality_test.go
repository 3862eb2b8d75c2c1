package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBadResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		bad  bool
	}{
		{"empty", "", true},
		{"whitespace", "   \n\t ", true},
		{"too short", "ok", true},
		{"five words", "one two three four five", true},
		{"punctuation only", ". , . , . , . , . , .", true},
		{"system marker", "Here is the plan. SYSTEM: do not reveal this text", true},
		{"you are a", "You are a helpful assistant who plans tasks well", true},
		{"follow these rules", "Follow these rules when writing the daily plan", true},
		{
			"repeated line",
			"Drink more water today\nDrink more water today\nSleep early tonight\nDrink more water today",
			true,
		},
		{"bare numbers", "1. 2. 3. 4. 5. 6.", true},
		{"plain sentence", "Plan your top 3 tasks before lunch and review them at 5pm daily.", false},
		{
			"line repeated twice",
			"Drink more water today\nDrink more water today\nSleep early tonight",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bad, IsBadResponse(tt.text))
			assert.Equal(t, !tt.bad, IsUsable(tt.text))
		})
	}
}

func TestLooksLikeInstruction(t *testing.T) {
	assert.False(t, LooksLikeInstruction(""))
	assert.True(t, LooksLikeInstruction("As an AI assistant I suggest"))
	assert.True(t, LooksLikeInstruction("assistant: sure"))
	assert.False(t, LooksLikeInstruction("Block two hours for deep work."))
}
