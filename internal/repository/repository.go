package repository

import (
	"context"
	"database/sql"
	"errors"

	"todo_service/internal/models"
)

// Conflict errors surfaced by the users table's UNIQUE constraints.
var (
	ErrEmailTaken    = errors.New("email already taken")
	ErrUsernameTaken = errors.New("username already taken")
)

// TodoStore persists todos. Lookups and targeted writes return (nil, nil)
// when the id does not exist; callers decide what a miss means.
type TodoStore interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, t *models.Todo) error
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	Replace(ctx context.Context, t *models.Todo) (*models.Todo, error)
	SetCompletion(ctx context.Context, id string, complete bool) (*models.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DetailsPatch carries the mutable account fields; nil means "leave as is".
type DetailsPatch struct {
	Username *string
	Email    *string
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateDetails(ctx context.Context, id string, patch DetailsPatch) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	Todos TodoStore
	Users UserStore
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Todos: NewTodoSQLite(db),
		Users: NewUserSQLite(db),
	}
}
