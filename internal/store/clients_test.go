package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndLookupClient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateClient(ctx, "Construcciones Pérez S.L.", []string{"Pérez", "CP"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	record, err := store.LookupClient(ctx, id)
	if err != nil {
		t.Fatalf("lookup client: %v", err)
	}
	if record.Name != "Construcciones Pérez S.L." {
		t.Fatalf("unexpected name %q", record.Name)
	}
	if record.NormalizedName != "construcciones perez s.l." {
		t.Fatalf("unexpected normalized name %q", record.NormalizedName)
	}
	if len(record.Aliases) != 2 || record.Aliases[0] != "Pérez" {
		t.Fatalf("unexpected aliases %#v", record.Aliases)
	}

	byName, err := store.LookupClientByName(ctx, "CONSTRUCCIONES PÉREZ S.L.")
	if err != nil {
		t.Fatalf("lookup by name: %v", err)
	}
	if byName.ID != id {
		t.Fatalf("expected id %d, got %d", id, byName.ID)
	}
}

func TestCreateClientDuplicate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateClient(ctx, "Alditraex", nil); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := store.CreateClient(ctx, "Alditraex", nil); !errors.Is(err, ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}
}

func TestUpdateClient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateClient(ctx, "Marsan", nil)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := store.UpdateClient(ctx, UpdateClientInput{ID: id, Name: "Marsán Obras", Aliases: []string{"Marsan"}}); err != nil {
		t.Fatalf("update client: %v", err)
	}
	record, err := store.LookupClient(ctx, id)
	if err != nil {
		t.Fatalf("lookup client: %v", err)
	}
	if record.NormalizedName != "marsan obras" {
		t.Fatalf("normalized name not refreshed: %q", record.NormalizedName)
	}
	if len(record.Aliases) != 1 {
		t.Fatalf("aliases not stored: %#v", record.Aliases)
	}

	if err := store.UpdateClient(ctx, UpdateClientInput{ID: 9999, Name: "Nadie"}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestDeleteClientKeepsTaskRawName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	clientID, err := store.CreateClient(ctx, "Alditraex", nil)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	taskID, err := store.CreateTask(ctx, CreateTaskInput{
		UserID:        7,
		Title:         "Llamar por la factura",
		ClientID:      clientID,
		ClientNameRaw: "alditraex",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := store.DeleteClient(ctx, clientID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
	task, err := store.LookupTask(ctx, taskID)
	if err != nil {
		t.Fatalf("lookup task: %v", err)
	}
	if task.ClientID != 0 {
		t.Fatalf("client_id should be cleared, got %d", task.ClientID)
	}
	if task.ClientNameRaw != "alditraex" {
		t.Fatalf("raw client name must survive deletion, got %q", task.ClientNameRaw)
	}
}
