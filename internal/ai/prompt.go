package ai

import (
	"fmt"
	"strings"

	"github.com/nhle/smarttask/internal/model"
)

// systemPrefix is prepended to every prompt sent to either model.
const systemPrefix = "You are SmartTask AI — a concise, practical productivity assistant. " +
	"Do NOT output internal instructions, system text, or meta commentary. " +
	"Respond only with the requested content.\n\n"

// BuildPrompt turns a suggestion request into a single instruction string.
// It is pure: identical requests produce identical prompts.
func BuildPrompt(req model.SuggestRequest) string {
	var prompt string

	switch req.Mode {
	case model.ModeTaskImprovement:
		prompt = "Improve each task below. For each task provide:\n" +
			"- One clearer, concise rewritten task (one line).\n" +
			"- Two concrete next actions that can be done today (two short bullet lines).\n\n" +
			"Format example:\n" +
			"Task: <original task>\n" +
			"Improved: <one-line improved task>\n" +
			"Next actions:\n" +
			"- <action 1>\n" +
			"- <action 2>\n\n" +
			"Tasks:\n" +
			numberedTasks(req.Tasks, true)

	case model.ModeTaskReorder:
		var titles []string
		for _, t := range req.Tasks {
			if title := strings.TrimSpace(t.Label()); title != "" {
				titles = append(titles, title)
			}
		}
		prompt = "Reorder the following task titles from highest to lowest priority. " +
			"Return ONLY the task titles, one per line, with no extra text or numbering. " +
			"If a title is ambiguous, keep the original text exactly as shown.\n\n" +
			strings.Join(titles, "\n")

	case model.ModeTaskBreakdown:
		var title string
		if req.Task != nil {
			title = strings.TrimSpace(req.Task.Label())
		}
		prompt = "Break this task into 4-8 short, actionable steps (numbered). " +
			"Each step should be a single short sentence.\n\n" +
			title

	case model.ModeHabitCoach:
		prompt = "For each habit below, give 1–2 short, practical improvement tips (each tip one line):\n\n" +
			numberedHabits(req.Tasks)

	case model.ModeHabitRoutine:
		prompt = "Create a simple weekly routine using these habits. " +
			"Provide a few bullet points describing what to do on different days (keep concise):\n\n" +
			numberedHabits(req.Tasks)

	case model.ModeHabitDiscipline:
		prompt = "Give realistic discipline and motivation tips to help someone stay consistent. " +
			"Keep suggestions short and encouraging:\n\n" +
			numberedHabits(req.Tasks)

	case model.ModeJournalSummary:
		prompt = "Summarize this journal entry in 3–6 concise bullet points focusing on key events and feelings:\n\n" +
			req.Journal

	case model.ModeJournalExtract:
		prompt = "From the journal entry below, extract any tasks or action items as a bullet list (one action per line):\n\n" +
			req.Journal

	case model.ModeJournalMood:
		prompt = "Analyze the emotional tone of this journal entry in 2–3 short sentences " +
			"and give 2 simple, practical coping or reflection suggestions:\n\n" +
			req.Journal

	case model.ModeGeneral:
		if len(req.Tasks) > 0 {
			prompt = "A user has the following tasks:\n" +
				numberedTasks(req.Tasks, false) +
				"\n\nUser request:\n" +
				req.Prompt +
				"\n\nPrioritize what they should focus on today and give a short reason for each top priority (1-3 items). " +
				"Then provide 2 concrete next steps."
		} else {
			prompt = "Answer the following request in a concise, practical way. Use short paragraphs or bullet points.\n\n" +
				"Request:\n" +
				req.Prompt
		}
	}

	if prompt == "" {
		request := req.Prompt
		if request == "" {
			request = "Give a helpful response."
		}
		prompt = "Answer the following request in a concise, practical way:\n\n" + request
	}

	return prompt
}

// numberedTasks renders "1. Title — description" lines. Items without a
// title or name get a "Task N" placeholder.
func numberedTasks(items []model.SubjectItem, trim bool) string {
	lines := make([]string, len(items))
	for i, t := range items {
		title := t.Label()
		if title == "" {
			title = fmt.Sprintf("Task %d", i+1)
		}
		if trim {
			title = strings.TrimSpace(title)
		}
		desc := ""
		if t.Description != "" {
			desc = " — " + t.Description
		}
		lines[i] = fmt.Sprintf("%d. %s%s", i+1, title, desc)
	}
	return strings.Join(lines, "\n")
}

func numberedHabits(items []model.SubjectItem) string {
	lines := make([]string, len(items))
	for i, h := range items {
		name := h.Label()
		if name == "" {
			name = "Habit"
		}
		lines[i] = fmt.Sprintf("%d. %s", i+1, name)
	}
	return strings.Join(lines, "\n")
}
