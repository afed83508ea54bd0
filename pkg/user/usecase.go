package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase describes user registration and lookup scenarios.
type UseCase interface {
	Register(ctx context.Context, email string) (User, error)
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email string) (User, error) {
	u := User{
		ID:        uuid.New(),
		Email:     strings.TrimSpace(strings.ToLower(email)),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}
