package store

import (
	"context"
	"testing"

	"github.com/jmm-1987/segurymat/internal/parse"
)

func TestRegistryFeedsParser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateClient(ctx, "Alditraex", []string{"aldi"}); err != nil {
		t.Fatalf("create client: %v", err)
	}

	registry := NewRegistry(store)
	clients, err := registry.AllClients(ctx)
	if err != nil {
		t.Fatalf("all clients: %v", err)
	}
	if len(clients) != 1 || clients[0].NormalizedName != "alditraex" {
		t.Fatalf("unexpected clients %+v", clients)
	}

	categories, err := registry.AllCategories(ctx)
	if err != nil {
		t.Fatalf("all categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("expected seeded categories")
	}

	p := parse.New(parse.Config{}, registry, registry, nil, nil)
	result := p.Parse(ctx, "crear tarea llamar al cliente aldi mañana")
	client := result.Entities.Client
	if client == nil || client.Match.Action != parse.ActionAuto || client.Match.ClientName != "Alditraex" {
		t.Fatalf("alias should auto-match through the registry, got %+v", client)
	}
}
