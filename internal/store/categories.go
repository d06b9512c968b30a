package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRecord struct {
	ID          int64
	Name        string
	Icon        string
	Color       string
	DisplayName string
}

var defaultCategories = []CategoryRecord{
	{Name: "ideas", Icon: "💡", Color: "#FFD700", DisplayName: "Ideas"},
	{Name: "incidencias", Icon: "⚠️", Color: "#FF6B6B", DisplayName: "Incidencias"},
	{Name: "reclamaciones", Icon: "📢", Color: "#FF4757", DisplayName: "Reclamaciones"},
	{Name: "presupuestos", Icon: "💰", Color: "#2ECC71", DisplayName: "Presupuestos"},
	{Name: "visitas", Icon: "🏠", Color: "#3498DB", DisplayName: "Visitas"},
	{Name: "administracion", Icon: "📋", Color: "#9B59B6", DisplayName: "Administración"},
	{Name: "en_espera", Icon: "⏳", Color: "#95A5A6", DisplayName: "En Espera"},
	{Name: "delegado", Icon: "👥", Color: "#16A085", DisplayName: "Delegado"},
	{Name: "llamar", Icon: "📞", Color: "#E67E22", DisplayName: "Llamar"},
	{Name: "personal", Icon: "👤", Color: "#1ABC9C", DisplayName: "Personal"},
}

func (s *Store) seedDefaultCategories(ctx context.Context) error {
	for _, category := range defaultCategories {
		_, err := s.db.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO categories (name, icon, color, display_name) VALUES (?, ?, ?, ?)`,
			category.Name,
			category.Icon,
			category.Color,
			category.DisplayName,
		)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", category.Name, err)
		}
	}
	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]CategoryRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, icon, color, COALESCE(display_name, name) FROM categories ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var records []CategoryRecord
	for rows.Next() {
		var record CategoryRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Icon, &record.Color, &record.DisplayName); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) LookupCategory(ctx context.Context, name string) (CategoryRecord, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, icon, color, COALESCE(display_name, name) FROM categories WHERE name = ?`,
		strings.TrimSpace(name),
	)
	var record CategoryRecord
	if err := row.Scan(&record.ID, &record.Name, &record.Icon, &record.Color, &record.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CategoryRecord{}, ErrCategoryNotFound
		}
		return CategoryRecord{}, fmt.Errorf("lookup category: %w", err)
	}
	return record, nil
}

type UpdateCategoryInput struct {
	ID          int64
	Icon        string
	Color       string
	DisplayName string
}

func (s *Store) UpdateCategory(ctx context.Context, input UpdateCategoryInput) error {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if icon := strings.TrimSpace(input.Icon); icon != "" {
		setParts = append(setParts, "icon = ?")
		args = append(args, icon)
	}
	if color := strings.TrimSpace(input.Color); color != "" {
		setParts = append(setParts, "color = ?")
		args = append(args, color)
	}
	if displayName := strings.TrimSpace(input.DisplayName); displayName != "" {
		setParts = append(setParts, "display_name = ?")
		args = append(args, displayName)
	}
	if len(setParts) == 0 {
		return nil
	}
	args = append(args, input.ID)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE categories SET `+strings.Join(setParts, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
