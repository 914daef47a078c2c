// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"time"

	"github.com/angelamos/taskvault/internal/core"
	"github.com/angelamos/taskvault/internal/metrics"
	"github.com/angelamos/taskvault/internal/todo"
)

type Repository interface {
	Insert(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	SetPro(ctx context.Context, id string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("register: %w", core.ErrDuplicateKey)
	}

	u := &User{
		ID:        core.NewID(),
		Name:      req.Name,
		Username:  req.Username,
		Pro:       false,
		CreatedAt: time.Now().UTC(),
		Todos:     []todo.Todo{},
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpgradeToPro flips the entitlement that lifts the free todo quota.
// A second upgrade attempt is an error, not a silent success; the
// store enforces that under its write lock.
func (s *Service) UpgradeToPro(ctx context.Context, id string) (*User, error) {
	upgraded, err := s.repo.SetPro(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.ProUpgrades.Inc()
	return upgraded, nil
}
