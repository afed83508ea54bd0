package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Log is one append-only progress entry. Logs are never mutated or deleted.
type Log struct {
	ID                  uuid.UUID `json:"id"`
	UserID              string    `json:"user_id"`
	CareerPath          string    `json:"career_path"`
	LogEntry            string    `json:"log_entry"`
	ActivitiesCompleted []string  `json:"activities_completed"`
	SkillsImproved      []string  `json:"skills_improved"`
	CreatedAt           time.Time `json:"timestamp"`
}

// Repository is the persistence port for progress logs.
type Repository interface {
	Create(ctx context.Context, l Log) error
	// ListRecentByUser returns up to limit logs, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Log, error)
}
