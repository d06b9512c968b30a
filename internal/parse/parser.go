// Package parse turns free-form Spanish utterances about tasks into a
// structured intent plus entities (client, date, priority, title,
// category). Matching is deterministic: regex rule layers plus
// edit-distance client matching. An optional assisted extractor can
// enrich task-creation parses; the rule path is always available.
package parse

import (
	"context"
	"log/slog"
	"time"

	"github.com/jmm-1987/segurymat/internal/llm"
	"github.com/jmm-1987/segurymat/internal/textnorm"
)

type Intent string

const (
	IntentCrear            Intent = "CREAR"
	IntentListar           Intent = "LISTAR"
	IntentCerrar           Intent = "CERRAR"
	IntentReprogramar      Intent = "REPROGRAMAR"
	IntentCambiarPrioridad Intent = "CAMBIAR_PRIORIDAD"
)

type MatchAction string

const (
	// ActionAuto: the match is certain enough to assign without asking.
	ActionAuto MatchAction = "auto"
	// ActionConfirm: plausible but not certain; the user must pick.
	ActionConfirm MatchAction = "confirm"
	// ActionCreate: no usable match; offer to register a new client.
	ActionCreate MatchAction = "create"
)

// Client is a read-only registry row. The registry owns the data; the
// parser only queries it.
type Client struct {
	ID             int64
	Name           string
	NormalizedName string
	Aliases        []string
}

type Category struct {
	Name        string
	DisplayName string
	Icon        string
}

type ClientRegistry interface {
	AllClients(ctx context.Context) ([]Client, error)
}

type CategoryRegistry interface {
	AllCategories(ctx context.Context) ([]Category, error)
}

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

type MatchDecision struct {
	Found      bool        `json:"found"`
	Confidence int         `json:"confidence"`
	Action     MatchAction `json:"action"`
	ClientID   int64       `json:"client_id,omitempty"`
	ClientName string      `json:"client_name,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

type ClientMention struct {
	Raw   string        `json:"raw"`
	Match MatchDecision `json:"match"`
}

type Entities struct {
	Client   *ClientMention `json:"client,omitempty"`
	Date     *time.Time     `json:"date,omitempty"`
	Priority string         `json:"priority"`
	Title    string         `json:"title"`
	Category string         `json:"category,omitempty"`
}

type Result struct {
	Intent       Intent   `json:"intent"`
	Entities     Entities `json:"entities"`
	OriginalText string   `json:"original_text"`
}

type Config struct {
	AutoThreshold    int
	ConfirmThreshold int
	MaxCandidates    int
}

type Parser struct {
	cfg        Config
	clients    ClientRegistry
	categories CategoryRegistry
	assist     llm.Extractor
	logger     *slog.Logger
	now        func() time.Time
}

// New builds a parser. assist may be nil, in which case every parse runs
// the rule-based path only.
func New(cfg Config, clients ClientRegistry, categories CategoryRegistry, assist llm.Extractor, logger *slog.Logger) *Parser {
	if cfg.AutoThreshold <= 0 {
		cfg.AutoThreshold = 85
	}
	if cfg.ConfirmThreshold <= 0 {
		cfg.ConfirmThreshold = 70
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		cfg:        cfg,
		clients:    clients,
		categories: categories,
		assist:     assist,
		logger:     logger,
		now:        time.Now,
	}
}

// Parse classifies the utterance and extracts its entities. It always
// returns a structurally valid result; anything it cannot resolve is
// simply left absent.
func (p *Parser) Parse(ctx context.Context, text string) Result {
	normalized := textnorm.Normalize(text)
	intent := classifyIntent(normalized)

	var entities Entities
	if intent == IntentCrear && p.assist != nil {
		assisted, err := p.extractAssisted(ctx, text)
		if err != nil {
			p.logger.Warn("assisted extraction failed, using rule-based path", "error", err)
			entities = p.extractRuleBased(ctx, text, normalized)
		} else {
			entities = assisted
			// Client resolution stays on the fuzzy path even when the
			// assisted call succeeds.
			entities.Client = p.extractClient(ctx, text)
		}
	} else {
		entities = p.extractRuleBased(ctx, text, normalized)
	}

	return Result{
		Intent:       intent,
		Entities:     entities,
		OriginalText: text,
	}
}

func (p *Parser) extractRuleBased(ctx context.Context, text, normalized string) Entities {
	return Entities{
		Client:   p.extractClient(ctx, text),
		Date:     p.extractDate(normalized),
		Priority: extractPriority(normalized),
		Title:    sanitizeTitle(text),
	}
}

func (p *Parser) extractClient(ctx context.Context, text string) *ClientMention {
	mentions := extractClientMentions(text)
	if len(mentions) == 0 {
		return nil
	}
	raw := mentions[0]
	return &ClientMention{
		Raw:   raw,
		Match: p.matchClient(ctx, raw),
	}
}
