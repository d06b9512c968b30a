package parse

import (
	"testing"

	"github.com/jmm-1987/segurymat/internal/textnorm"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"create explicit", "crear una tarea para llamar a pedro", IntentCrear},
		{"create tengo que", "tengo que hacer una cosa importante", IntentCrear},
		{"create accented noun", "añadir recordatorio de la reunión", IntentCrear},
		{"list", "muéstrame las tareas pendientes", IntentListar},
		{"list question", "¿qué tareas tengo hoy?", IntentListar},
		{"subordinate que is not list", "aunque hay tareas pendientes no puedo seguir", IntentCrear},
		{"close", "da por hecha la tarea del informe", IntentCerrar},
		{"close terminar", "terminar la tarea de contabilidad", IntentCerrar},
		{"reschedule", "reprogramar la reunión para el viernes", IntentReprogramar},
		{"reschedule posponer", "posponer lo del banco", IntentReprogramar},
		{"change priority", "cambiar la prioridad de la entrega", IntentCambiarPrioridad},
		{"default create", "llamar al fontanero", IntentCrear},
		{"default create bare noun", "revisión caldera", IntentCrear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyIntent(textnorm.Normalize(tt.text))
			if got != tt.want {
				t.Fatalf("classifyIntent(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyIntentOrderPrefersCreate(t *testing.T) {
	// Mixed vocabulary still resolves by evaluation order.
	got := classifyIntent(textnorm.Normalize("crear tarea para ver las tareas pendientes"))
	if got != IntentCrear {
		t.Fatalf("expected CREAR to win by order, got %s", got)
	}
}
