package survey

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UseCase — survey submission and retrieval scenarios.
type UseCase interface {
	Submit(ctx context.Context, userID string, responses map[string]any) (Response, error)
	// LatestAnswers reports the answers of the most recent response; the
	// boolean is false when the user never submitted one.
	LatestAnswers(ctx context.Context, userID string) (map[string]any, bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, userID string, responses map[string]any) (Response, error) {
	if responses == nil {
		responses = map[string]any{}
	}
	r := Response{
		ID:        uuid.New(),
		UserID:    userID,
		Responses: responses,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Response{}, err
	}
	return r, nil
}

func (s *service) LatestAnswers(ctx context.Context, userID string) (map[string]any, bool, error) {
	r, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return r.Responses, true, nil
}
