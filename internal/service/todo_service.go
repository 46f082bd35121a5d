package service

import (
	"context"
	"errors"

	"todo_service/internal/models"
	"todo_service/internal/repository"
)

// ErrTodoNotFound marks a miss on a targeted todo operation.
var ErrTodoNotFound = errors.New("todo not found")

// TodoService is a thin orchestration layer over the todo store; field
// presence is already guaranteed by request binding.
type TodoService struct {
	todoRepo repository.TodoStore
}

func NewTodoService(repo repository.TodoStore) *TodoService {
	return &TodoService{todoRepo: repo}
}

func (s *TodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.todoRepo.List(ctx)
}

func (s *TodoService) Create(ctx context.Context, in TodoInput) (*models.Todo, error) {
	t := &models.Todo{
		Title:       in.Title,
		Description: in.Description,
		Severity:    in.Severity,
		IsComplete:  in.IsComplete,
	}
	if err := s.todoRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TodoService) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	t, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTodoNotFound
	}
	return t, nil
}

func (s *TodoService) Replace(ctx context.Context, id string, in TodoInput) (*models.Todo, error) {
	t := &models.Todo{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Severity:    in.Severity,
		IsComplete:  in.IsComplete,
	}
	updated, err := s.todoRepo.Replace(ctx, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTodoNotFound
	}
	return updated, nil
}

func (s *TodoService) SetCompletion(ctx context.Context, id string, complete bool) (*models.Todo, error) {
	updated, err := s.todoRepo.SetCompletion(ctx, id, complete)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTodoNotFound
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	found, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrTodoNotFound
	}
	return nil
}
