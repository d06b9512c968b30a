package parse

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jmm-1987/segurymat/internal/textnorm"
)

// matchClient resolves a raw mention against the registry and tiers the
// result: auto above AutoThreshold, confirm between the two thresholds,
// create below ConfirmThreshold or on an empty registry.
func (p *Parser) matchClient(ctx context.Context, raw string) MatchDecision {
	normalized := textnorm.Normalize(raw)

	clients, err := p.clients.AllClients(ctx)
	if err != nil {
		p.logger.Error("client registry query failed", "error", err)
		return MatchDecision{Action: ActionCreate}
	}
	if len(clients) == 0 || normalized == "" {
		return MatchDecision{Action: ActionCreate}
	}

	// Exact normalized match is certain regardless of the fuzzy
	// thresholds in play.
	for _, client := range clients {
		if clientNormalizedName(client) == normalized {
			return MatchDecision{
				Found:      true,
				Confidence: 100,
				Action:     ActionAuto,
				ClientID:   client.ID,
				ClientName: client.Name,
			}
		}
		for _, alias := range client.Aliases {
			if textnorm.Normalize(alias) == normalized {
				return MatchDecision{
					Found:      true,
					Confidence: 100,
					Action:     ActionAuto,
					ClientID:   client.ID,
					ClientName: client.Name,
				}
			}
		}
	}

	scored := make([]Candidate, 0, len(clients))
	for _, client := range clients {
		best := similarityRatio(normalized, clientNormalizedName(client))
		for _, alias := range client.Aliases {
			if s := similarityRatio(normalized, textnorm.Normalize(alias)); s > best {
				best = s
			}
		}
		scored = append(scored, Candidate{ID: client.ID, Name: client.Name, Confidence: best})
	}
	// Stable sort keeps registry order on ties, so the earliest client
	// wins an exact tie deterministically.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})

	top := scored[0]
	switch {
	case top.Confidence >= p.cfg.AutoThreshold:
		return MatchDecision{
			Found:      true,
			Confidence: top.Confidence,
			Action:     ActionAuto,
			ClientID:   top.ID,
			ClientName: top.Name,
		}
	case top.Confidence >= p.cfg.ConfirmThreshold:
		limit := p.cfg.MaxCandidates
		if limit > len(scored) {
			limit = len(scored)
		}
		candidates := make([]Candidate, 0, limit)
		for _, candidate := range scored[:limit] {
			if candidate.Confidence < p.cfg.ConfirmThreshold {
				break
			}
			candidates = append(candidates, candidate)
		}
		// The best match rides along so the caller can offer it as the
		// default choice; found stays true even though confirmation is
		// still required.
		return MatchDecision{
			Found:      true,
			Confidence: top.Confidence,
			Action:     ActionConfirm,
			ClientID:   top.ID,
			ClientName: top.Name,
			Candidates: candidates,
		}
	default:
		return MatchDecision{Confidence: top.Confidence, Action: ActionCreate}
	}
}

func clientNormalizedName(client Client) string {
	if client.NormalizedName != "" {
		return client.NormalizedName
	}
	return textnorm.Normalize(client.Name)
}

// similarityRatio scores two strings 0..100 from their edit distance
// relative to the longer string.
func similarityRatio(a, b string) int {
	if a == b {
		return 100
	}
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	distance := levenshtein.ComputeDistance(a, b)
	ratio := 100 * (longest - distance) / longest
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}
