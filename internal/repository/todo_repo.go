package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"todo_service/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

// Ensure implementation of TodoStore interface at compile time.
var _ TodoStore = (*TodoSQLite)(nil)

const (
	listTodosSQL       = `SELECT id, title, description, severity, is_complete FROM todos`
	insertTodoSQL      = `INSERT INTO todos (id, title, description, severity, is_complete) VALUES (?, ?, ?, ?, ?)`
	selectTodoByIDSQL  = `SELECT id, title, description, severity, is_complete FROM todos WHERE id = ?`
	replaceTodoSQL     = `UPDATE todos SET title = ?, description = ?, severity = ?, is_complete = ? WHERE id = ?`
	setCompletionSQL   = `UPDATE todos SET is_complete = ? WHERE id = ?`
	deleteTodoByIDSQL  = `DELETE FROM todos WHERE id = ?`
)

// List returns every todo. An empty table yields an empty slice, not nil,
// so the HTTP layer serializes it as [].
func (r *TodoSQLite) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, listTodosSQL)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Severity, &t.IsComplete); err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo rows: %w", err)
	}
	return todos, nil
}

// Create assigns a fresh id and inserts the todo.
func (r *TodoSQLite) Create(ctx context.Context, t *models.Todo) error {
	t.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertTodoSQL, t.ID, t.Title, t.Description, t.Severity, t.IsComplete); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// GetByID fetches a todo by id. Returns (nil, nil) if not found.
func (r *TodoSQLite) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	var t models.Todo
	err := r.db.QueryRowContext(ctx, selectTodoByIDSQL, id).
		Scan(&t.ID, &t.Title, &t.Description, &t.Severity, &t.IsComplete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select todo %q: %w", id, err)
	}
	return &t, nil
}

// Replace overwrites every mutable field of the todo identified by t.ID and
// returns the post-update state. Returns (nil, nil) if the id does not exist.
func (r *TodoSQLite) Replace(ctx context.Context, t *models.Todo) (*models.Todo, error) {
	res, err := r.db.ExecContext(ctx, replaceTodoSQL, t.Title, t.Description, t.Severity, t.IsComplete, t.ID)
	if err != nil {
		return nil, fmt.Errorf("update todo %q: %w", t.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for todo %q: %w", t.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return t, nil
}

// SetCompletion flips only the completion flag, leaving the other fields
// untouched. Returns (nil, nil) if the id does not exist.
func (r *TodoSQLite) SetCompletion(ctx context.Context, id string, complete bool) (*models.Todo, error) {
	res, err := r.db.ExecContext(ctx, setCompletionSQL, complete, id)
	if err != nil {
		return nil, fmt.Errorf("update todo completion %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes the todo and reports whether it existed.
func (r *TodoSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteTodoByIDSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete todo %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for todo %q: %w", id, err)
	}
	return affected > 0, nil
}
