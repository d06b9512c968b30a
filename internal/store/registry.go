package store

import (
	"context"

	"github.com/jmm-1987/segurymat/internal/parse"
)

// Registry adapts the store to the parser's read-only registry
// interfaces.
type Registry struct {
	store *Store
}

func NewRegistry(store *Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) AllClients(ctx context.Context) ([]parse.Client, error) {
	records, err := r.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	clients := make([]parse.Client, 0, len(records))
	for _, record := range records {
		clients = append(clients, parse.Client{
			ID:             record.ID,
			Name:           record.Name,
			NormalizedName: record.NormalizedName,
			Aliases:        record.Aliases,
		})
	}
	return clients, nil
}

func (r *Registry) AllCategories(ctx context.Context) ([]parse.Category, error) {
	records, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]parse.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, parse.Category{
			Name:        record.Name,
			DisplayName: record.DisplayName,
			Icon:        record.Icon,
		})
	}
	return categories, nil
}
