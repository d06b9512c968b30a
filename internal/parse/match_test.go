package parse

import (
	"context"
	"errors"
	"testing"
)

type fakeClientRegistry struct {
	clients []Client
	err     error
}

func (f *fakeClientRegistry) AllClients(ctx context.Context) ([]Client, error) {
	return f.clients, f.err
}

func newMatchParser(clients ...Client) *Parser {
	return New(Config{}, &fakeClientRegistry{clients: clients}, nil, nil, nil)
}

func TestMatchClientExact(t *testing.T) {
	p := newMatchParser(
		Client{ID: 1, Name: "Alditraex", NormalizedName: "alditraex"},
		Client{ID: 2, Name: "Marsan", NormalizedName: "marsan"},
	)
	decision := p.matchClient(context.Background(), "Alditraex")
	if !decision.Found || decision.Action != ActionAuto {
		t.Fatalf("expected auto decision, got %+v", decision)
	}
	if decision.Confidence != 100 {
		t.Fatalf("exact match must score 100, got %d", decision.Confidence)
	}
	if decision.ClientID != 1 || decision.ClientName != "Alditraex" {
		t.Fatalf("wrong client resolved: %+v", decision)
	}
}

func TestMatchClientExactIgnoresThresholds(t *testing.T) {
	p := New(Config{AutoThreshold: 101, ConfirmThreshold: 101}, &fakeClientRegistry{clients: []Client{
		{ID: 1, Name: "Alditraex", NormalizedName: "alditraex"},
	}}, nil, nil, nil)
	decision := p.matchClient(context.Background(), "alditráex")
	if decision.Action != ActionAuto || decision.Confidence != 100 {
		t.Fatalf("exact normalized match must bypass thresholds, got %+v", decision)
	}
}

func TestMatchClientAlias(t *testing.T) {
	p := newMatchParser(Client{ID: 3, Name: "Construcciones Pérez S.L.", NormalizedName: "construcciones perez s.l.", Aliases: []string{"Pérez"}})
	decision := p.matchClient(context.Background(), "perez")
	if decision.Action != ActionAuto || decision.ClientID != 3 {
		t.Fatalf("alias should match exactly, got %+v", decision)
	}
}

func TestMatchClientConfirmBand(t *testing.T) {
	p := newMatchParser(
		Client{ID: 1, Name: "Alditraex", NormalizedName: "alditraex"},
		Client{ID: 2, Name: "Marsan", NormalizedName: "marsan"},
	)
	decision := p.matchClient(context.Background(), "Alditra")
	if !decision.Found || decision.Action != ActionConfirm {
		t.Fatalf("expected confirm decision, got %+v", decision)
	}
	if decision.ClientID != 1 || decision.ClientName != "Alditraex" {
		t.Fatalf("confirm decision must carry the best match identity, got %+v", decision)
	}
	if len(decision.Candidates) < 1 || len(decision.Candidates) > p.cfg.MaxCandidates {
		t.Fatalf("candidate count out of range: %d", len(decision.Candidates))
	}
	if decision.Candidates[0].Name != "Alditraex" {
		t.Fatalf("best candidate should be Alditraex, got %+v", decision.Candidates)
	}
	seen := map[int64]bool{}
	for _, candidate := range decision.Candidates {
		if seen[candidate.ID] {
			t.Fatalf("duplicate candidate id %d", candidate.ID)
		}
		seen[candidate.ID] = true
		if candidate.Confidence < p.cfg.ConfirmThreshold {
			t.Fatalf("candidate %+v below confirm threshold", candidate)
		}
	}
}

func TestMatchClientCreateBand(t *testing.T) {
	p := newMatchParser(Client{ID: 1, Name: "Alditraex", NormalizedName: "alditraex"})
	decision := p.matchClient(context.Background(), "Ferretería López")
	if decision.Found || decision.Action != ActionCreate {
		t.Fatalf("expected create decision, got %+v", decision)
	}
	if len(decision.Candidates) != 0 {
		t.Fatalf("create decision must carry no candidates, got %+v", decision.Candidates)
	}
}

func TestMatchClientEmptyRegistry(t *testing.T) {
	p := newMatchParser()
	decision := p.matchClient(context.Background(), "Alditraex")
	if decision.Found || decision.Action != ActionCreate {
		t.Fatalf("empty registry must yield create, got %+v", decision)
	}
}

func TestMatchClientRegistryError(t *testing.T) {
	p := New(Config{}, &fakeClientRegistry{err: errors.New("db locked")}, nil, nil, nil)
	decision := p.matchClient(context.Background(), "Alditraex")
	if decision.Action != ActionCreate {
		t.Fatalf("registry error must degrade to create, got %+v", decision)
	}
}

func TestMatchClientTieKeepsRegistryOrder(t *testing.T) {
	p := newMatchParser(
		Client{ID: 1, Name: "Casa Norte", NormalizedName: "casa norte"},
		Client{ID: 2, Name: "Casa Sorte", NormalizedName: "casa sorte"},
	)
	decision := p.matchClient(context.Background(), "Casa Torte")
	if decision.Action == ActionCreate {
		t.Fatalf("expected a scored decision, got %+v", decision)
	}
	switch decision.Action {
	case ActionAuto:
		if decision.ClientID != 1 {
			t.Fatalf("tie must resolve to the first registry entry, got %+v", decision)
		}
	case ActionConfirm:
		if decision.Candidates[0].ID != 1 {
			t.Fatalf("tie must rank the first registry entry first, got %+v", decision.Candidates)
		}
	}
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"alditraex", "alditraex", 100},
		{"alditra", "alditraex", 77},
		{"casa", "flor", 0},
		{"", "", 100},
		{"a", "", 0},
	}
	for _, tt := range tests {
		if got := similarityRatio(tt.a, tt.b); got != tt.want {
			t.Fatalf("similarityRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
