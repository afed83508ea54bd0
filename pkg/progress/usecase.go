package progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mjsmylie/NextObjective/pkg/career"
)

// Score points granted per logged item.
const (
	pointsPerActivity = 2
	pointsPerSkill    = 3
	recentLogLimit    = 10
)

// Summary is the user-progress view: the latest career score (nil when the
// user has none) and the most recent log entries.
type Summary struct {
	CareerScore *career.Score `json:"career_score"`
	RecentLogs  []Log         `json:"recent_logs"`
}

// ScoreUpdater applies progress deltas to the current career score.
// Implemented by the career score repository.
type ScoreUpdater interface {
	ApplyProgress(ctx context.Context, userID, careerPath string, delta float64) (bool, error)
}

// ScoreReader looks up the latest career score for a user.
type ScoreReader interface {
	LatestByUser(ctx context.Context, userID string) (career.Score, error)
}

// UseCase — progress logging and retrieval scenarios.
type UseCase interface {
	// Record stores the log and bumps the matching career score when one
	// exists. A missing score is a documented no-op, not an error.
	Record(ctx context.Context, l Log) (Log, error)
	Summary(ctx context.Context, userID string) (Summary, error)
}

type service struct {
	repo    Repository
	scores  ScoreUpdater
	lookups ScoreReader
}

func NewService(repo Repository, scores ScoreUpdater, lookups ScoreReader) UseCase {
	return &service{repo: repo, scores: scores, lookups: lookups}
}

func (s *service) Record(ctx context.Context, l Log) (Log, error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.ActivitiesCompleted == nil {
		l.ActivitiesCompleted = []string{}
	}
	if l.SkillsImproved == nil {
		l.SkillsImproved = []string{}
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return Log{}, err
	}

	delta := float64(pointsPerActivity*len(l.ActivitiesCompleted) + pointsPerSkill*len(l.SkillsImproved))
	if delta > 0 {
		// The update is a single conditional statement in the store, so
		// concurrent submissions for the same pair serialize there.
		if _, err := s.scores.ApplyProgress(ctx, l.UserID, l.CareerPath, delta); err != nil {
			return Log{}, err
		}
	}
	return l, nil
}

func (s *service) Summary(ctx context.Context, userID string) (Summary, error) {
	out := Summary{RecentLogs: []Log{}}

	latest, err := s.lookups.LatestByUser(ctx, userID)
	switch {
	case err == nil:
		out.CareerScore = &latest
	case errors.Is(err, career.ErrNoScore):
		// no score yet: career_score stays null
	default:
		return Summary{}, err
	}

	logs, err := s.repo.ListRecentByUser(ctx, userID, recentLogLimit)
	if err != nil {
		return Summary{}, err
	}
	if logs != nil {
		out.RecentLogs = logs
	}
	return out, nil
}
