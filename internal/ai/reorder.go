package ai

import (
	"regexp"
	"strings"

	"github.com/nhle/smarttask/internal/model"
)

var titleSeparator = regexp.MustCompile(`[\n,]+`)

// ReorderResult is the reconciled order of the request's items.
type ReorderResult struct {
	// Order lists item IDs, highest priority first.
	Order []string `json:"order"`

	// Fallback is true when Order is the original input order rather than
	// one derived from the model output.
	Fallback bool `json:"fallback"`
}

// Reorder maps the model's free-text list of titles back onto items.
//
// Each candidate title takes the first unused item whose trimmed,
// lower-cased title equals it, contains it, or is contained by it.
// Ambiguous candidates therefore resolve to the earliest matching item in
// the input. Candidates that match nothing are dropped. Items that were
// never matched follow in their original order, so nothing is lost.
func Reorder(output string, items []model.SubjectItem) ReorderResult {
	original := make([]string, len(items))
	for i, it := range items {
		original[i] = it.ID
	}

	if strings.TrimSpace(output) == "" {
		return ReorderResult{Order: original, Fallback: true}
	}

	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = strings.ToLower(strings.TrimSpace(it.Label()))
	}

	used := make([]bool, len(items))
	order := make([]string, 0, len(items))

	for _, segment := range titleSeparator.Split(output, -1) {
		candidate := strings.ToLower(strings.TrimSpace(segment))
		if candidate == "" {
			continue
		}
		for i, title := range titles {
			if used[i] || title == "" {
				continue
			}
			if title == candidate ||
				strings.Contains(candidate, title) ||
				strings.Contains(title, candidate) {
				used[i] = true
				order = append(order, items[i].ID)
				break
			}
		}
	}

	for i, it := range items {
		if !used[i] {
			order = append(order, it.ID)
		}
	}

	if len(order) == 0 {
		return ReorderResult{Order: original, Fallback: true}
	}

	return ReorderResult{Order: order, Fallback: false}
}
