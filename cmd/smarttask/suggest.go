package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/smarttask/internal/ai"
	"github.com/nhle/smarttask/internal/app"
	"github.com/nhle/smarttask/internal/model"
	"github.com/nhle/smarttask/internal/theme"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Run the suggestion pipeline once and print the result",
	Example: `  smarttask suggest --mode task_reorder --task "Pay rent" --task "Buy milk"
  smarttask suggest --mode general --prompt "Plan my afternoon"
  smarttask suggest --mode journal_mood --journal "Tired but proud of today."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		prompt, _ := cmd.Flags().GetString("prompt")
		journal, _ := cmd.Flags().GetString("journal")
		tasks, _ := cmd.Flags().GetStringArray("task")

		req := buildSuggestRequest(model.Mode(mode), prompt, journal, tasks)

		assistant, err := app.NewAssistant(cmd.Context(), cfg.AI, logger)
		if err != nil {
			return err
		}

		result, err := assistant.Suggest(cmd.Context(), req)
		if err != nil {
			return err
		}

		renderSuggestion(cmd.OutOrStdout(), req, result)
		return nil
	},
}

func init() {
	suggestCmd.Flags().String("mode", string(model.ModeGeneral), "suggestion mode, e.g. task_reorder or habit_coach")
	suggestCmd.Flags().String("prompt", "", "free-text request")
	suggestCmd.Flags().String("journal", "", "journal entry text for journal_* modes")
	suggestCmd.Flags().StringArray("task", nil, "task or habit title; repeat for several")
}

// buildSuggestRequest numbers the given titles as item IDs. task_breakdown
// takes its single subject from the first title.
func buildSuggestRequest(mode model.Mode, prompt, journal string, titles []string) model.SuggestRequest {
	req := model.SuggestRequest{
		Mode:    mode,
		Prompt:  prompt,
		Journal: journal,
	}

	for i, title := range titles {
		req.Tasks = append(req.Tasks, model.SubjectItem{
			ID:    strconv.Itoa(i + 1),
			Title: title,
			Name:  title,
		})
	}
	if mode == model.ModeTaskBreakdown && len(req.Tasks) > 0 {
		first := req.Tasks[0]
		req.Task = &first
	}

	return req
}

func renderSuggestion(w io.Writer, req model.SuggestRequest, result *ai.Suggestion) {
	mode := string(req.Mode)
	if mode == "" {
		mode = "default"
	}
	fmt.Fprintln(w, theme.HeaderStyle.Render(mode)+theme.SourceStyle(string(result.Source)).Render(string(result.Source)))

	if result.Reorder == nil {
		fmt.Fprintln(w, theme.PanelStyle.Render(result.Reply))
		return
	}

	titles := make(map[string]string, len(req.Tasks))
	for _, t := range req.Tasks {
		titles[t.ID] = t.Label()
	}

	var lines []string
	for i, id := range result.Reorder.Order {
		lines = append(lines, theme.ListItemStyle.Render(fmt.Sprintf("%d. %s", i+1, titles[id])))
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))

	if result.Reorder.Fallback {
		fmt.Fprintln(w, theme.HelpStyle.Render("Model output did not match any task; original order kept."))
	}
}
