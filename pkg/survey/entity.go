package survey

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("survey response not found")

// Response holds one submitted survey. The most recent response per user is
// authoritative; answers are keyed by question id.
type Response struct {
	ID        uuid.UUID      `json:"id"`
	UserID    string         `json:"user_id"`
	Responses map[string]any `json:"responses"`
	CreatedAt time.Time      `json:"timestamp"`
}

// Question is one entry of the fixed survey catalog.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

// Repository is the persistence port for survey responses.
type Repository interface {
	Create(ctx context.Context, r Response) error
	// LatestByUser returns ErrNotFound when the user never submitted one.
	LatestByUser(ctx context.Context, userID string) (Response, error)
}
