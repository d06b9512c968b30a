package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

const (
	TaskStatusOpen      = "open"
	TaskStatusCompleted = "completed"
	TaskStatusCancelled = "cancelled"
)

type TaskRecord struct {
	ID            int64
	UserID        int64
	UserName      string
	Title         string
	Description   string
	Status        string
	Priority      string
	TaskDate      time.Time
	ClientID      int64
	ClientNameRaw string
	Category      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateTaskInput struct {
	UserID        int64
	UserName      string
	Title         string
	Description   string
	Priority      string
	TaskDate      time.Time
	ClientID      int64
	ClientNameRaw string
	Category      string
}

func (s *Store) CreateTask(ctx context.Context, input CreateTaskInput) (int64, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return 0, errors.New("task title required")
	}
	priority := strings.TrimSpace(input.Priority)
	if priority == "" {
		priority = "normal"
	}
	taskDateUnix := int64(0)
	if !input.TaskDate.IsZero() {
		taskDateUnix = input.TaskDate.UTC().Unix()
	}

	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tasks (
			user_id, user_name, title, description, priority,
			task_date_unix, client_id, client_name_raw, category, updated_at_unix
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.UserID,
		nullIfEmpty(strings.TrimSpace(input.UserName)),
		title,
		nullIfEmpty(strings.TrimSpace(input.Description)),
		priority,
		nullIfZeroInt64(taskDateUnix),
		nullIfZeroInt64(input.ClientID),
		nullIfEmpty(strings.TrimSpace(input.ClientNameRaw)),
		nullIfEmpty(strings.TrimSpace(input.Category)),
		time.Now().UTC().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task insert id: %w", err)
	}
	return id, nil
}

const taskColumns = `id, user_id, COALESCE(user_name, ''), title, COALESCE(description, ''),
	status, priority, COALESCE(task_date_unix, 0), COALESCE(client_id, 0),
	COALESCE(client_name_raw, ''), COALESCE(category, ''), created_at, COALESCE(updated_at_unix, 0)`

func (s *Store) LookupTask(ctx context.Context, id int64) (TaskRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	record, err := scanTask(row)
	if err != nil {
		return TaskRecord{}, err
	}
	return record, nil
}

type ListTasksInput struct {
	UserID   int64
	Status   string
	ClientID int64
	Limit    int
}

func (s *Store) ListTasks(ctx context.Context, input ListTasksInput) ([]TaskRecord, error) {
	limit := input.Limit
	if limit < 1 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	whereParts := []string{"1=1"}
	args := make([]any, 0, 4)
	if input.UserID > 0 {
		whereParts = append(whereParts, "user_id = ?")
		args = append(args, input.UserID)
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		whereParts = append(whereParts, "status = ?")
		args = append(args, status)
	}
	if input.ClientID > 0 {
		whereParts = append(whereParts, "client_id = ?")
		args = append(args, input.ClientID)
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE `+strings.Join(whereParts, " AND ")+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	results := make([]TaskRecord, 0, limit)
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}
	return results, rows.Err()
}

// OpenTasksForClient lists open tasks attached to a client, oldest
// first, for close/reschedule pickers.
func (s *Store) OpenTasksForClient(ctx context.Context, clientID int64) ([]TaskRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE client_id = ? AND status = 'open'
		 ORDER BY created_at ASC, id ASC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list open tasks for client: %w", err)
	}
	defer rows.Close()

	var results []TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}
	return results, rows.Err()
}

type UpdateTaskInput struct {
	ID       int64
	Title    string
	Status   string
	Priority string
	TaskDate time.Time
	Category string
}

func (s *Store) UpdateTask(ctx context.Context, input UpdateTaskInput) error {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if title := strings.TrimSpace(input.Title); title != "" {
		setParts = append(setParts, "title = ?")
		args = append(args, title)
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		setParts = append(setParts, "status = ?")
		args = append(args, status)
	}
	if priority := strings.TrimSpace(input.Priority); priority != "" {
		setParts = append(setParts, "priority = ?")
		args = append(args, priority)
	}
	if !input.TaskDate.IsZero() {
		setParts = append(setParts, "task_date_unix = ?")
		args = append(args, input.TaskDate.UTC().Unix())
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		setParts = append(setParts, "category = ?")
		args = append(args, category)
	}
	if len(setParts) == 0 {
		return nil
	}
	setParts = append(setParts, "updated_at_unix = ?")
	args = append(args, time.Now().UTC().Unix(), input.ID)

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET `+strings.Join(setParts, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *Store) CompleteTask(ctx context.Context, id int64) error {
	return s.UpdateTask(ctx, UpdateTaskInput{ID: id, Status: TaskStatusCompleted})
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err == nil && rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func scanTask(row rowScanner) (TaskRecord, error) {
	var record TaskRecord
	var taskDateUnix int64
	var updatedUnix int64
	var createdAtText string
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.UserName,
		&record.Title,
		&record.Description,
		&record.Status,
		&record.Priority,
		&taskDateUnix,
		&record.ClientID,
		&record.ClientNameRaw,
		&record.Category,
		&createdAtText,
		&updatedUnix,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TaskRecord{}, ErrTaskNotFound
		}
		return TaskRecord{}, fmt.Errorf("scan task row: %w", err)
	}
	if taskDateUnix > 0 {
		record.TaskDate = time.Unix(taskDateUnix, 0).UTC()
	}
	if updatedUnix > 0 {
		record.UpdatedAt = time.Unix(updatedUnix, 0).UTC()
	}
	record.CreatedAt = parseSQLiteDateTime(createdAtText)
	return record, nil
}
