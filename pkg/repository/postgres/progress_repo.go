package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsmylie/NextObjective/pkg/progress"
)

// ProgressRepository stores append-only progress logs.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) (*ProgressRepository, error) {
	r := &ProgressRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProgressRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS progress_logs (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	career_path TEXT NOT NULL,
	log_entry TEXT NOT NULL,
	activities_completed JSONB NOT NULL,
	skills_improved JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS progress_logs_user_created_idx
	ON progress_logs (user_id, created_at DESC);
`)
	return err
}

func (r *ProgressRepository) Create(ctx context.Context, l progress.Log) error {
	activitiesJSON, err := json.Marshal(l.ActivitiesCompleted)
	if err != nil {
		return err
	}
	skillsJSON, err := json.Marshal(l.SkillsImproved)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO progress_logs (id, user_id, career_path, log_entry, activities_completed, skills_improved, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, l.ID, l.UserID, l.CareerPath, l.LogEntry, activitiesJSON, skillsJSON, l.CreatedAt)
	return err
}

func (r *ProgressRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]progress.Log, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, career_path, log_entry, activities_completed, skills_improved, created_at
FROM progress_logs
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []progress.Log{}
	for rows.Next() {
		var l progress.Log
		var activitiesBytes, skillsBytes []byte
		var created time.Time
		if err := rows.Scan(&l.ID, &l.UserID, &l.CareerPath, &l.LogEntry, &activitiesBytes, &skillsBytes, &created); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(activitiesBytes, &l.ActivitiesCompleted)
		_ = json.Unmarshal(skillsBytes, &l.SkillsImproved)
		l.CreatedAt = created.UTC()
		out = append(out, l)
	}
	return out, rows.Err()
}
