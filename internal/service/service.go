package service

import (
	"context"

	"todo_service/internal/models"
	"todo_service/internal/repository"
)

// TodoInput carries the writable fields of a todo.
type TodoInput struct {
	Title       string
	Description string
	Severity    string
	IsComplete  bool
}

// AccountDetails is a partial update of the mutable account fields.
type AccountDetails struct {
	Username *string
	Email    *string
}

// Todos exposes the todo lifecycle: list/create/get/replace/complete/delete.
type Todos interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, in TodoInput) (*models.Todo, error)
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	Replace(ctx context.Context, id string, in TodoInput) (*models.Todo, error)
	SetCompletion(ctx context.Context, id string, complete bool) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

// Accounts exposes registration, login and account maintenance. Register and
// Login return the user together with a signed token.
type Accounts interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Delete(ctx context.Context, id string) error
	UpdateDetails(ctx context.Context, id string, d AccountDetails) (*models.User, error)
	UpdatePassword(ctx context.Context, id, password string) (*models.User, error)
	ParseToken(accessToken string) (*Claims, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Todos
	Accounts
}

// NewService wires the repository layer into concrete services. The signing
// secret is validated by the caller before it gets here.
func NewService(repos *repository.Repository, signingSecret string) *Service {
	return &Service{
		Todos:    NewTodoService(repos.Todos),
		Accounts: NewAccountService(repos.Users, signingSecret),
	}
}
