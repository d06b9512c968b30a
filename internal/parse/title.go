package parse

import (
	"regexp"
	"strings"
)

const (
	maxTitleRunes = 200
	minTitleRunes = 5
)

// Strippable framing around the actual task description. Intent verbs
// and nouns are removed on the raw (unnormalized) text, so accented
// forms need their own alternatives here.
var titleNoise = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:crear|nueva|nuevo|añadir|agregar|poner|hacer|tengo que|necesito)\b`),
	regexp.MustCompile(`(?i)\b(?:listar|mostrar|ver|dame|mu[eé]strame|cu[aá]les)\b`),
	regexp.MustCompile(`(?i)\b(?:cerrar|completar|terminar|finalizar|marcar como hecha|da por hecha|hecho|realizado)\b`),
	regexp.MustCompile(`(?i)\b(?:reprogramar|cambiar fecha|posponer|aplazar)\b`),
	regexp.MustCompile(`(?i)\b(?:cambiar(?:\s+la)?\s+prioridad|modificar prioridad)\b`),
	regexp.MustCompile(`(?i)\b(?:una\s+)?(?:tareas?|recordatorios?|notas?|eventos?|cosas?|pendientes)\b`),
}

// sanitizeTitle strips the command framing (intent phrases, client
// mentions, priority words) from the raw text and keeps what is left as
// the task title. An over-aggressive strip falls back to the original.
func sanitizeTitle(text string) string {
	cleaned := text
	for _, pattern := range titleNoise {
		cleaned = pattern.ReplaceAllString(cleaned, " ")
	}
	cleaned = stripMentionPhrases(cleaned)
	cleaned = priorityVocabulary.ReplaceAllString(cleaned, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if len([]rune(cleaned)) < minTitleRunes {
		cleaned = strings.TrimSpace(text)
	}
	return truncateRunes(cleaned, maxTitleRunes)
}

var mentionPhrasePrefix = regexp.MustCompile(`(?i)\b(?:del\s+cliente|para\s+el\s+cliente|cliente)\s+`)

// stripMentionPhrases removes each detected mention phrase together
// with its prefix, leaving surrounding words intact.
func stripMentionPhrases(text string) string {
	for _, mention := range extractClientMentions(text) {
		phrase := regexp.MustCompile(mentionPhrasePrefix.String() + regexp.QuoteMeta(mention))
		text = phrase.ReplaceAllString(text, " ")
	}
	return text
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
