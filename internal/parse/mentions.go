package parse

import (
	"regexp"
	"strings"

	"github.com/jmm-1987/segurymat/internal/textnorm"
)

// Mention forms, most specific first. Captures run to the end of the
// phrase; trailing non-name words are trimmed afterwards.
var mentionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bdel\s+cliente\s+([\p{L}\d_][\p{L}\d_\s.&-]*)`),
	regexp.MustCompile(`(?i)\bpara\s+el\s+cliente\s+([\p{L}\d_][\p{L}\d_\s.&-]*)`),
	regexp.MustCompile(`(?i)\bcliente\s+([\p{L}\d_][\p{L}\d_\s.&-]*)`),
}

// Words that follow a client name without being part of it: dates,
// priorities, task nouns and connective filler.
var mentionStopwords = map[string]bool{
	"hoy": true, "mañana": true, "pasado": true,
	"lunes": true, "martes": true, "miercoles": true, "jueves": true,
	"viernes": true, "sabado": true, "domingo": true,
	"urgente": true, "urgent": true, "importante": true,
	"alta": true, "baja": true, "media": true, "normal": true,
	"esta": true, "este": true, "proxima": true, "proximo": true,
	"semana": true, "que": true, "viene": true, "siguiente": true,
	"para": true, "por": true, "con": true, "sin": true,
	"y": true, "e": true, "o": true, "u": true, "a": true, "al": true,
	"el": true, "la": true, "los": true, "las": true, "de": true, "del": true,
	"tarea": true, "tareas": true, "recordatorio": true, "nota": true,
}

// extractClientMentions scans the raw text for client-mention phrases
// and returns the candidate name substrings, deduplicated in order of
// appearance.
func extractClientMentions(text string) []string {
	var mentions []string
	seen := map[string]bool{}

	for _, pattern := range mentionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			name := trimMention(m[1])
			if name == "" {
				continue
			}
			key := textnorm.Normalize(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			mentions = append(mentions, name)
		}
	}
	return mentions
}

// trimMention cuts the capture at the first word that belongs to the
// rest of the utterance ("cliente alditraex mañana urgente" names only
// "alditraex").
func trimMention(capture string) string {
	words := strings.Fields(strings.TrimSpace(capture))
	for i, word := range words {
		if mentionStopwords[textnorm.Normalize(word)] {
			words = words[:i]
			break
		}
	}
	return strings.Join(words, " ")
}
