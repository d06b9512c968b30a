package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Weekday indices follow the Spanish convention: 0=lunes .. 6=domingo.
var weekdayIndices = map[string]int{
	"lunes":     0,
	"martes":    1,
	"miercoles": 2,
	"jueves":    3,
	"viernes":   4,
	"sabado":    5,
	"domingo":   6,
}

const weekdayAlternation = `lunes|martes|miercoles|jueves|viernes|sabado|domingo`

// Modifier forms, scanned in priority order; the first hit wins.
var (
	thisWeekdayPattern     = regexp.MustCompile(`\beste\s+(` + weekdayAlternation + `)\b`)
	weekdayNextWeekPattern = regexp.MustCompile(`\b(` + weekdayAlternation + `)\s+de\s+la\s+semana\s+que\s+viene\b`)
	nextWeekdayPattern     = regexp.MustCompile(`\b(?:proximo|siguiente)\s+(` + weekdayAlternation + `)\b`)
	bareWeekdayPattern     = regexp.MustCompile(`\b(?:el\s+)?(` + weekdayAlternation + `)\b`)
)

// Named relative tokens resolve to a plain day offset at midnight.
// Longer tokens first so "pasado mañana" is not shadowed by "mañana".
var relativeDayTokens = []struct {
	token string
	days  int
}{
	{"pasado mañana", 2},
	{"mañana", 1},
	{"hoy", 0},
	{"proxima semana", 7},
	{"esta semana", 0},
}

var monthNumbers = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

var (
	monthDatePattern   = regexp.MustCompile(`\b(?:el\s+)?(\d{1,2})\s+de\s+(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)(?:\s+de(?:l)?\s+(\d{4}))?\b`)
	numericDatePattern = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b|\b\d{1,2}[/.-]\d{1,2}(?:[/.-]\d{2,4})?\b`)
)

// extractDate resolves the first date expression found in the normalized
// text. Nil means the task is simply unscheduled. Results with no time
// of day are promoted to 09:00 local, the default task time.
func (p *Parser) extractDate(normalized string) *time.Time {
	now := p.now()

	if resolved := resolveWeekdayExpression(normalized, now); resolved != nil {
		return resolved
	}

	for _, relative := range relativeDayTokens {
		if strings.Contains(normalized, relative.token) {
			day := now.AddDate(0, 0, relative.days)
			return promoteMorning(atMidnight(day))
		}
	}

	if resolved := resolveMonthDate(normalized, now); resolved != nil {
		return promoteMorning(*resolved)
	}

	if resolved := resolveNumericDate(normalized, now); resolved != nil {
		return promoteMorning(*resolved)
	}

	return nil
}

func resolveWeekdayExpression(normalized string, now time.Time) *time.Time {
	if m := thisWeekdayPattern.FindStringSubmatch(normalized); m != nil {
		// "este lunes" counts today: if today is that weekday the task
		// lands on today.
		resolved := nextWeekday(now, weekdayIndices[m[1]], false)
		return &resolved
	}
	if m := weekdayNextWeekPattern.FindStringSubmatch(normalized); m != nil {
		resolved := weekdayInNextWeek(now, weekdayIndices[m[1]])
		return &resolved
	}
	if m := nextWeekdayPattern.FindStringSubmatch(normalized); m != nil {
		// "próximo lunes" is strictly future: today never qualifies.
		resolved := nextWeekday(now, weekdayIndices[m[1]], true)
		return &resolved
	}
	if m := bareWeekdayPattern.FindStringSubmatch(normalized); m != nil {
		resolved := nextWeekday(now, weekdayIndices[m[1]], false)
		return &resolved
	}
	return nil
}

// nextWeekday returns the next occurrence of target (0=lunes..6=domingo)
// counting today as a candidate, at 09:00. forceNext skips today and
// jumps a full week instead.
func nextWeekday(now time.Time, target int, forceNext bool) time.Time {
	daysAhead := (target - spanishWeekday(now) + 7) % 7
	if daysAhead == 0 && forceNext {
		daysAhead = 7
	}
	return atMorning(now.AddDate(0, 0, daysAhead))
}

// weekdayInNextWeek always lands in the calendar week after the current
// one, even when the weekday has not yet occurred this week.
func weekdayInNextWeek(now time.Time, target int) time.Time {
	delta := target - spanishWeekday(now)
	switch {
	case delta < 0:
		delta += 7
	case delta == 0:
		delta = 7
	default:
		delta += 7
	}
	return atMorning(now.AddDate(0, 0, delta))
}

func resolveMonthDate(normalized string, now time.Time) *time.Time {
	m := monthDatePattern.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return nil
	}
	month := monthNumbers[m[2]]

	if m[3] != "" {
		year, err := strconv.Atoi(m[3])
		if err != nil {
			return nil
		}
		resolved := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		return &resolved
	}

	// No year given: prefer the future occurrence.
	resolved := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if resolved.Before(atMidnight(now)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return &resolved
}

var dayMonthPattern = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})$`)

func resolveNumericDate(normalized string, now time.Time) *time.Time {
	token := numericDatePattern.FindString(normalized)
	if token == "" {
		return nil
	}

	// Day/month with no year: resolve directly, preferring the future.
	if m := dayMonthPattern.FindStringSubmatch(token); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			return nil
		}
		resolved := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
		if resolved.Before(atMidnight(now)) {
			resolved = resolved.AddDate(1, 0, 0)
		}
		return &resolved
	}

	// Day-first: Spanish input writes 15/12/2026, not 12/15/2026.
	parsed, err := dateparse.ParseIn(token, now.Location(), dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	return &parsed
}

// spanishWeekday maps Go's Sunday-first weekday to 0=lunes..6=domingo.
func spanishWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atMorning(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, t.Location())
}

func promoteMorning(t time.Time) *time.Time {
	if t.Hour() == 0 && t.Minute() == 0 {
		t = atMorning(t)
	}
	return &t
}
