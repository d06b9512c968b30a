// Package llm defines the boundary to the optional assisted-extraction
// service. The rule-based parser never depends on this path being up;
// callers must fall back to rules on any error.
package llm

import (
	"context"
	"errors"
	"time"
)

var ErrUnavailable = errors.New("assisted extraction unavailable")

// CategoryHint describes one selectable category for the extraction
// prompt, including the keyword synonyms the service should look for.
type CategoryHint struct {
	Name        string
	DisplayName string
	Synonyms    []string
}

type ExtractionInput struct {
	Text       string
	Categories []CategoryHint
	Now        time.Time
}

// TaskExtraction is the raw service answer. Fields come back unvalidated;
// the parser decides what to keep.
type TaskExtraction struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Date     string `json:"date"` // ISO date (YYYY-MM-DD) or empty
	Title    string `json:"title"`
}

type Extractor interface {
	ExtractTask(ctx context.Context, input ExtractionInput) (TaskExtraction, error)
}
