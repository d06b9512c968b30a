package parse

import "regexp"

// Each intent is an AND-group: every pattern in the list must match
// somewhere in the normalized text, in any order. Vocabulary is written
// accent-stripped because the classifier input is normalized.
var intentPatterns = map[Intent][]*regexp.Regexp{
	IntentCrear: {
		regexp.MustCompile(`(?i)(?:crear|nueva|añadir|agregar|poner|hacer|tengo que|necesito)`),
		regexp.MustCompile(`(?i)(?:tarea|recordatorio|nota|evento|cosa)`),
	},
	IntentListar: {
		// que/cuales carry the question forms ("que tareas tengo");
		// word-bounded so subordinate clauses (aunque, porque) do not
		// drag unrelated utterances into LISTAR.
		regexp.MustCompile(`(?i)(?:listar|mostrar|ver|dame|muestrame|\bque\b|\bcuales\b)`),
		regexp.MustCompile(`(?i)(?:tareas|pendientes|cosas|recordatorios)`),
	},
	IntentCerrar: {
		regexp.MustCompile(`(?i)(?:cerrar|completar|terminar|hecho|realizado|finalizar|marcar como hecha|da por hecha)`),
		regexp.MustCompile(`(?i)(?:tarea|tareas|cosa|cosas)`),
	},
	IntentReprogramar: {
		regexp.MustCompile(`(?i)(?:reprogramar|cambiar fecha|mover|posponer|aplazar|cambiar a)`),
	},
	IntentCambiarPrioridad: {
		regexp.MustCompile(`(?i)(?:cambiar prioridad|cambiar la prioridad|modificar prioridad)`),
	},
}

// Evaluation order is fixed; the first intent whose whole group matches
// wins.
var intentOrder = []Intent{
	IntentCrear,
	IntentListar,
	IntentCerrar,
	IntentReprogramar,
	IntentCambiarPrioridad,
}

// classifyIntent falls back to CREAR when nothing matches: users often
// just describe a task without a creation verb.
func classifyIntent(normalized string) Intent {
	for _, intent := range intentOrder {
		matched := true
		for _, pattern := range intentPatterns[intent] {
			if !pattern.MatchString(normalized) {
				matched = false
				break
			}
		}
		if matched {
			return intent
		}
	}
	return IntentCrear
}
