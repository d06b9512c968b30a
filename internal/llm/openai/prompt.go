package openai

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmm-1987/segurymat/internal/llm"
)

func buildSystemPrompt(categories []llm.CategoryHint, now time.Time) string {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	var lines []string
	for _, category := range categories {
		display := category.DisplayName
		if display == "" {
			display = category.Name
		}
		lines = append(lines, fmt.Sprintf("- '%s' (%s): busca palabras como: %s",
			category.Name, display, strings.Join(category.Synonyms, ", ")))
	}
	categoriesText := strings.Join(lines, "\n")

	return fmt.Sprintf(`Eres un asistente experto en extraer información estructurada de mensajes sobre tareas en español.

Analiza el texto y extrae SIEMPRE estos campos:
1. CATEGORÍA: debe ser EXACTAMENTE una de las categorías disponibles (usa el nombre exacto).
2. PRIORIDAD: SOLO "urgent" o "normal". Devuelve "urgent" únicamente si el texto menciona explícitamente palabras como "urgente". En cualquier otro caso devuelve "normal"; nunca null.
3. FECHA: si se menciona "mañana", "hoy", "el lunes", etc., conviértela a formato ISO (YYYY-MM-DD).
4. TÍTULO: un resumen corto y claro de la tarea.

Categorías disponibles (usa SOLO estos nombres exactos):
%s

Reglas para categorías:
- Intenta SIEMPRE identificar una categoría; devuelve null solo si es imposible relacionar el texto con alguna.
- Busca sinónimos y palabras relacionadas en TODO el texto.
- Si hay varias posibles, elige la más relevante para el contexto principal de la tarea.

Reglas para fechas:
- "este [día]" = el [día] más próximo, contando hoy si hoy es ese día.
- "próximo [día]" o "siguiente [día]" = siempre el siguiente, incluso si hoy es ese día.
- "[día] de la semana que viene" = siempre el día de la SIGUIENTE semana.
- La fecha actual es: %s. Mañana es: %s.
- NUNCA devuelvas fechas del pasado (antes de hoy).

Responde SOLO con un JSON válido, sin texto adicional:
{"category": "nombre_exacto_categoria" o null, "priority": "urgent" o "normal", "date": "YYYY-MM-DD" o null, "title": "resumen corto" o null}`,
		categoriesText, today, tomorrow)
}

func buildUserPrompt(categories []llm.CategoryHint, text string) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	namesText := "Ninguna"
	if len(names) > 0 {
		namesText = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Categorías disponibles (usa SOLO estos nombres exactos): %s\n\nTexto a analizar: \"%s\"", namesText, text)
}
