package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmm-1987/segurymat/internal/textnorm"
)

var ErrClientNotFound = errors.New("client not found")
var ErrClientExists = errors.New("client already exists")

type ClientRecord struct {
	ID             int64
	Name           string
	NormalizedName string
	Aliases        []string
	CreatedAt      time.Time
}

func (s *Store) CreateClient(ctx context.Context, name string, aliases []string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("client name required")
	}
	aliasesJSON, err := json.Marshal(aliases)
	if err != nil {
		return 0, fmt.Errorf("encode aliases: %w", err)
	}

	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO clients (name, normalized_name, aliases) VALUES (?, ?, ?)`,
		name,
		textnorm.Normalize(name),
		string(aliasesJSON),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, ErrClientExists
		}
		return 0, fmt.Errorf("insert client: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("client insert id: %w", err)
	}
	return id, nil
}

func (s *Store) LookupClient(ctx context.Context, id int64) (ClientRecord, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, normalized_name, COALESCE(aliases, '[]'), created_at
		 FROM clients WHERE id = ?`,
		id,
	)
	return scanClient(row)
}

func (s *Store) LookupClientByName(ctx context.Context, name string) (ClientRecord, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, normalized_name, COALESCE(aliases, '[]'), created_at
		 FROM clients WHERE normalized_name = ?`,
		textnorm.Normalize(name),
	)
	return scanClient(row)
}

func (s *Store) ListClients(ctx context.Context) ([]ClientRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, name, normalized_name, COALESCE(aliases, '[]'), created_at
		 FROM clients ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var records []ClientRecord
	for rows.Next() {
		record, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type UpdateClientInput struct {
	ID      int64
	Name    string
	Aliases []string
}

func (s *Store) UpdateClient(ctx context.Context, input UpdateClientInput) error {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if name := strings.TrimSpace(input.Name); name != "" {
		setParts = append(setParts, "name = ?", "normalized_name = ?")
		args = append(args, name, textnorm.Normalize(name))
	}
	if input.Aliases != nil {
		aliasesJSON, err := json.Marshal(input.Aliases)
		if err != nil {
			return fmt.Errorf("encode aliases: %w", err)
		}
		setParts = append(setParts, "aliases = ?")
		args = append(args, string(aliasesJSON))
	}
	if len(setParts) == 0 {
		return nil
	}
	args = append(args, input.ID)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE clients SET `+strings.Join(setParts, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// DeleteClient removes the client row; tasks keep their client_name_raw
// and their client_id goes NULL via the foreign key.
func (s *Store) DeleteClient(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (ClientRecord, error) {
	var record ClientRecord
	var aliasesJSON string
	var createdAtText string
	if err := row.Scan(&record.ID, &record.Name, &record.NormalizedName, &aliasesJSON, &createdAtText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientRecord{}, ErrClientNotFound
		}
		return ClientRecord{}, fmt.Errorf("scan client row: %w", err)
	}
	if err := json.Unmarshal([]byte(aliasesJSON), &record.Aliases); err != nil {
		record.Aliases = nil
	}
	record.CreatedAt = parseSQLiteDateTime(createdAtText)
	return record, nil
}
