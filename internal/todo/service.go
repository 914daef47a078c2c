// AngelaMos | 2026
// service.go

package todo

import (
	"context"
	"time"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/metrics"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Todo, error)
	Append(ctx context.Context, ownerID string, t *Todo) error
	Update(
		ctx context.Context,
		ownerID, todoID string,
		title *string,
		deadline *time.Time,
	) (*Todo, error)
	Complete(ctx context.Context, ownerID, todoID string) (*Todo, error)
	Remove(ctx context.Context, ownerID, todoID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Create(
	ctx context.Context,
	ownerID string,
	req CreateTodoRequest,
) (*Todo, error) {
	t := &Todo{
		ID:        core.NewID(),
		Title:     req.Title,
		Done:      false,
		Deadline:  ParseDeadline(req.Deadline),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, ownerID, t); err != nil {
		return nil, err
	}

	metrics.TodosCreated.Inc()
	return t, nil
}

func (s *Service) Update(
	ctx context.Context,
	ownerID, todoID string,
	req UpdateTodoRequest,
) (*Todo, error) {
	var title *string
	if req.Title != nil && *req.Title != "" {
		title = req.Title
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed := ParseDeadline(*req.Deadline)
		deadline = &parsed
	}

	return s.repo.Update(ctx, ownerID, todoID, title, deadline)
}

// Complete marks the todo done. The transition is one-way and
// idempotent; there is no un-complete operation.
func (s *Service) Complete(
	ctx context.Context,
	ownerID, todoID string,
) (*Todo, error) {
	t, err := s.repo.Complete(ctx, ownerID, todoID)
	if err != nil {
		return nil, err
	}

	metrics.TodosCompleted.Inc()
	return t, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, todoID string) error {
	if err := s.repo.Remove(ctx, ownerID, todoID); err != nil {
		return err
	}

	metrics.TodosDeleted.Inc()
	return nil
}
