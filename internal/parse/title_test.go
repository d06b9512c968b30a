package parse

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"strips framing and mention",
			"crear tarea llamar al cliente alditraex mañana urgente",
			"llamar al mañana",
		},
		{
			"strips priority vocabulary",
			"nueva tarea revisar la caldera prioridad alta",
			"revisar la caldera",
		},
		{
			"strips evento noun",
			"crear evento comprar entradas",
			"comprar entradas",
		},
		{
			"strips cosa noun",
			"tengo que hacer una cosa revisar el contador",
			"revisar el contador",
		},
		{
			"keeps plain description",
			"revisar la instalación del almacén",
			"revisar la instalación del almacén",
		},
		{
			"too aggressive strip falls back",
			"crear tarea ya",
			"crear tarea ya",
		},
		{
			"short input returned as is",
			"ojo",
			"ojo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeTitle(tt.text); got != tt.want {
				t.Fatalf("sanitizeTitle(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitleLengthBounds(t *testing.T) {
	long := "revisar " + strings.Repeat("expediente ", 40)
	got := sanitizeTitle(long)
	if n := len([]rune(got)); n > maxTitleRunes {
		t.Fatalf("title exceeds %d runes: %d", maxTitleRunes, n)
	}

	short := sanitizeTitle("crear una tarea")
	if len([]rune(short)) < minTitleRunes {
		t.Fatalf("stripped-to-nothing input must fall back to the original, got %q", short)
	}
}
