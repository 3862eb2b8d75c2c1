package ai

import (
	"regexp"
	"strings"
)

// leakedPatterns match fragments of the local model's own training
// instructions and tokenizer placeholders that sometimes end up in its
// output.
var leakedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)use the smarttask ai[^.\n]*`),
	regexp.MustCompile(`(?i)use the following skills[^.\n]*`),
	regexp.MustCompile(`(?i)follow the on-?screen instructions[^.\n]*`),
	regexp.MustCompile(`(?i)write down one goal and one reason it matters\.?`),
	regexp.MustCompile(`(?i)write down three tasks[^.\n]*`),
	regexp.MustCompile(`(?i)create a short list of tasks and a list of goals\.?`),
	regexp.MustCompile(`(?i)create a task list and set a time frame\.?`),
	regexp.MustCompile(`(?i)\(empty\)`),
	regexp.MustCompile(`(?i)<pad>`),
	regexp.MustCompile(`(?i)</s>`),
}

var (
	// enumerationRun matches two or more bare numeric markers in a row on
	// one line, e.g. "1. 1. 1. ". The first marker is captured.
	enumerationRun = regexp.MustCompile(`\b(\d+\.[ \t]*)(?:\d+\.[ \t]*)+`)

	lineBreak  = regexp.MustCompile(`\r?\n`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// maxLineRepeats is how many copies of an identical line survive
// sanitizing.
const maxLineRepeats = 2

// Sanitize removes leaked instruction fragments and placeholder tokens,
// collapses bare enumerations, keeps at most two copies of any line,
// collapses runs of blank lines and trims the result.
//
// Sanitize(Sanitize(x)) == Sanitize(x) for every x: the cleanup pass is
// repeated until it stops changing the text. Every pass that changes the
// text also shortens it, so the loop terminates.
func Sanitize(text string) string {
	cleaned := text
	for {
		next := sanitizePass(cleaned)
		if next == cleaned {
			return next
		}
		cleaned = next
	}
}

func sanitizePass(text string) string {
	cleaned := text
	for _, re := range leakedPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	lines := lineBreak.Split(cleaned, -1)
	kept := make([]string, 0, len(lines))
	counts := make(map[string]int, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(enumerationRun.ReplaceAllString(line, "$1"))
		if line == "" {
			kept = append(kept, line)
			continue
		}
		counts[line]++
		if counts[line] <= maxLineRepeats {
			kept = append(kept, line)
		}
	}

	cleaned = strings.Join(kept, "\n")
	cleaned = blankLines.ReplaceAllString(cleaned, "\n\n")

	return strings.TrimSpace(cleaned)
}
