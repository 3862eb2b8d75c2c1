package ai

import (
	"regexp"
	"strings"
)

// leakagePhrases indicate the model echoed an instruction template or
// system text instead of answering.
var leakagePhrases = []string{
	"use the following skills",
	"follow the on-screen instructions",
	"write down one goal",
	"write down three tasks",
	"create a short list of tasks",
	"create a task list",
	"you are helping someone",
	"you are a",
	"system:",
	"assistant:",
	"as an ai assistant",
	"follow these rules",
	"gate rules",
}

const (
	minWords         = 6
	maxRepeatedLines = 3
)

var (
	punctuationOnly = regexp.MustCompile(`^[\s.,]+$`)
	bareEnumeration = regexp.MustCompile(`^(\d+\.\s*){3,}$`)
)

// LooksLikeInstruction reports whether text contains any known
// instruction-leakage phrase, ignoring case.
func LooksLikeInstruction(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range leakagePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsBadResponse reports whether text is unusable: empty, too short,
// punctuation only, leaked instructions, degenerate repetition, or a bare
// list of numbers. It does not judge whether the answer is any good.
func IsBadResponse(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}

	if len(strings.Fields(trimmed)) < minWords {
		return true
	}

	if punctuationOnly.MatchString(trimmed) {
		return true
	}

	if LooksLikeInstruction(trimmed) {
		return true
	}

	if maxLineFrequency(trimmed) >= maxRepeatedLines {
		return true
	}

	return bareEnumeration.MatchString(trimmed)
}

// IsUsable is the quality gate: the negation of IsBadResponse.
func IsUsable(text string) bool {
	return !IsBadResponse(text)
}

// maxLineFrequency returns how often the most common non-blank trimmed
// line occurs.
func maxLineFrequency(text string) int {
	freq := make(map[string]int)
	highest := 0
	for _, line := range lineBreak.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		freq[line]++
		highest = max(highest, freq[line])
	}
	return highest
}
