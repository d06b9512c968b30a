package parse

import (
	"fmt"
	"testing"
	"time"
)

// 2026-09-01 is a Tuesday.
var testNow = time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)

func newTestParser(now time.Time) *Parser {
	p := New(Config{}, nil, nil, nil, nil)
	p.now = func() time.Time { return now }
	return p
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"hoy", "llamar a pedro hoy", time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)},
		{"manana", "llamar a pedro mañana", time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)},
		{"pasado manana", "revisar caldera pasado mañana", time.Date(2026, 9, 3, 9, 0, 0, 0, time.Local)},
		{"proxima semana", "enviar presupuesto la proxima semana", time.Date(2026, 9, 8, 9, 0, 0, 0, time.Local)},
		{"este martes is today", "reunion este martes", time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)},
		{"proximo martes skips today", "reunion el proximo martes", time.Date(2026, 9, 8, 9, 0, 0, 0, time.Local)},
		{"siguiente martes skips today", "reunion el siguiente martes", time.Date(2026, 9, 8, 9, 0, 0, 0, time.Local)},
		{"martes next week", "reunion el martes de la semana que viene", time.Date(2026, 9, 8, 9, 0, 0, 0, time.Local)},
		{"miercoles next week not this one", "visita el miercoles de la semana que viene", time.Date(2026, 9, 9, 9, 0, 0, 0, time.Local)},
		{"bare upcoming weekday", "entregar informe el viernes", time.Date(2026, 9, 4, 9, 0, 0, 0, time.Local)},
		{"bare elapsed weekday wraps", "entregar informe el lunes", time.Date(2026, 9, 7, 9, 0, 0, 0, time.Local)},
		{"month date future", "pagar factura el 15 de diciembre", time.Date(2026, 12, 15, 9, 0, 0, 0, time.Local)},
		{"month date past rolls over", "pagar factura el 15 de enero", time.Date(2027, 1, 15, 9, 0, 0, 0, time.Local)},
		{"month date explicit year", "renovar contrato el 15 de marzo de 2027", time.Date(2027, 3, 15, 9, 0, 0, 0, time.Local)},
		{"numeric day first", "cita el 15/12", time.Date(2026, 12, 15, 9, 0, 0, 0, time.Local)},
		{"numeric past rolls over", "cita el 03/01", time.Date(2027, 1, 3, 9, 0, 0, 0, time.Local)},
		{"iso date", "cita el 2026-12-15", time.Date(2026, 12, 15, 9, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(testNow)
			got := p.extractDate(tt.text)
			if got == nil {
				t.Fatalf("extractDate(%q) = nil, want %s", tt.text, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("extractDate(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDateAbsent(t *testing.T) {
	p := newTestParser(testNow)
	if got := p.extractDate("llamar al fontanero"); got != nil {
		t.Fatalf("expected nil date, got %s", got)
	}
}

func TestWeekdaySemanticsAllDays(t *testing.T) {
	// Walk a full week of "today" values for every target weekday.
	monday := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	for offset := 0; offset < 7; offset++ {
		now := monday.AddDate(0, 0, offset)
		for name, target := range weekdayIndices {
			t.Run(fmt.Sprintf("%s from day %d", name, offset), func(t *testing.T) {
				this := nextWeekday(now, target, false)
				next := nextWeekday(now, target, true)
				nextWeek := weekdayInNextWeek(now, target)

				if spanishWeekday(this) != target || spanishWeekday(next) != target || spanishWeekday(nextWeek) != target {
					t.Fatal("resolved date landed on the wrong weekday")
				}
				if target == spanishWeekday(now) {
					if !this.Equal(atMorning(now)) {
						t.Fatalf("este %s on that day should be today, got %s", name, this)
					}
					if !next.Equal(atMorning(now.AddDate(0, 0, 7))) {
						t.Fatalf("proximo %s on that day should be today+7, got %s", name, next)
					}
				}
				if !nextWeek.After(atMorning(now)) {
					t.Fatalf("%s de la semana que viene must be strictly after today, got %s", name, nextWeek)
				}
				days := int(nextWeek.Sub(atMidnight(now)).Hours() / 24)
				if days < 1 || days > 13 {
					t.Fatalf("next-week resolution out of range: %d days ahead", days)
				}
				// Must land in the following calendar week (Monday-based).
				currentWeekStart := atMidnight(now.AddDate(0, 0, -spanishWeekday(now)))
				if nextWeek.Before(currentWeekStart.AddDate(0, 0, 7)) {
					t.Fatalf("%s de la semana que viene landed in the current week: %s", name, nextWeek)
				}
			})
		}
	}
}
