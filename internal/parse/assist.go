package parse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmm-1987/segurymat/internal/llm"
	"github.com/jmm-1987/segurymat/internal/textnorm"
)

const categoryMatchThreshold = 80

// extractAssisted runs the external extractor for a task-creation
// utterance and validates its answer field by field. Invalid fields are
// dropped individually; only a failed call aborts the whole path.
func (p *Parser) extractAssisted(ctx context.Context, text string) (Entities, error) {
	categories, err := p.categories.AllCategories(ctx)
	if err != nil {
		return Entities{}, fmt.Errorf("load categories: %w", err)
	}

	hints := make([]llm.CategoryHint, 0, len(categories))
	for _, category := range categories {
		hints = append(hints, llm.CategoryHint{
			Name:        category.Name,
			DisplayName: category.DisplayName,
			Synonyms:    CategorySynonyms(category.Name),
		})
	}

	extraction, err := p.assist.ExtractTask(ctx, llm.ExtractionInput{
		Text:       text,
		Categories: hints,
		Now:        p.now(),
	})
	if err != nil {
		return Entities{}, err
	}

	entities := Entities{
		Priority: coercePriority(extraction.Priority),
		Date:     p.validateAssistedDate(extraction.Date),
		Category: validateCategory(extraction.Category, categories),
		Title:    strings.TrimSpace(extraction.Title),
	}
	if entities.Title == "" {
		entities.Title = sanitizeTitle(text)
	}
	return entities, nil
}

func coercePriority(priority string) string {
	if strings.EqualFold(strings.TrimSpace(priority), PriorityUrgent) {
		return PriorityUrgent
	}
	return PriorityNormal
}

// validateAssistedDate drops past dates and promotes a midnight result
// to the default 09:00 task time.
func (p *Parser) validateAssistedDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, p.now().Location())
	if err != nil {
		parsed, err = time.ParseInLocation(time.RFC3339, value, p.now().Location())
		if err != nil {
			return nil
		}
	}
	if parsed.Before(atMidnight(p.now())) {
		return nil
	}
	return promoteMorning(parsed)
}

// validateCategory accepts only known identifiers: exact
// case-insensitive first, then fuzzy with a fixed floor.
func validateCategory(name string, categories []Category) string {
	name = textnorm.Normalize(name)
	if name == "" {
		return ""
	}
	for _, category := range categories {
		if textnorm.Normalize(category.Name) == name {
			return category.Name
		}
	}
	bestScore := 0
	bestName := ""
	for _, category := range categories {
		if score := similarityRatio(name, textnorm.Normalize(category.Name)); score > bestScore {
			bestScore = score
			bestName = category.Name
		}
	}
	if bestScore >= categoryMatchThreshold {
		return bestName
	}
	return ""
}
