package parse

import (
	"regexp"
	"strings"
)

const (
	PriorityUrgent = "urgent"
	PriorityNormal = "normal"
)

// Urgency keywords for the rule-based path. Only urgent vs. normal is
// auto-detected here; the finer priority grades are set through explicit
// task updates, never inferred from free text.
var urgencyKeywords = []string{"urgente", "urgentemente", "urge", "prioritario", "prioritaria"}

// The wider vocabulary is still recognized for title cleanup, so that
// "llamar a pedro prioridad alta" does not keep "prioridad alta" in the
// title even though the parser reports "normal".
var priorityVocabulary = regexp.MustCompile(`(?i)\b(?:urgentemente|urgente|urgent|urge|prioritario|prioritaria|prioridad\s+(?:alta|media|baja|normal)|importante|alta|media|baja|normal|low|high|sin\s+prisa)\b`)

func extractPriority(normalized string) string {
	for _, keyword := range urgencyKeywords {
		if containsWord(normalized, keyword) {
			return PriorityUrgent
		}
	}
	return PriorityNormal
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || text[idx-1] == ' '
		end := idx + len(word)
		after := end == len(text) || text[end] == ' '
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}
