package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsmylie/NextObjective/pkg/career"
)

// AnalysisRepository stores resume analyses. Rows are append-only; the
// active analysis per user is the latest by created_at.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_analyses (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	suggestions JSONB NOT NULL,
	extracted_skills JSONB NOT NULL,
	experience_level TEXT NOT NULL,
	resume_text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resume_analyses_user_created_idx
	ON resume_analyses (user_id, created_at DESC);
`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, a career.Analysis) error {
	suggestionsJSON, err := json.Marshal(a.Suggestions)
	if err != nil {
		return err
	}
	skillsJSON, err := json.Marshal(a.ExtractedSkills)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_analyses (id, user_id, suggestions, extracted_skills, experience_level, resume_text, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.UserID, suggestionsJSON, skillsJSON, a.ExperienceLevel, a.ResumeText, a.CreatedAt)
	return err
}

func (r *AnalysisRepository) LatestByUser(ctx context.Context, userID string) (career.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, suggestions, extracted_skills, experience_level, resume_text, created_at
FROM resume_analyses
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`, userID)
	var a career.Analysis
	var suggestionsBytes, skillsBytes []byte
	var created time.Time
	if err := row.Scan(&a.ID, &a.UserID, &suggestionsBytes, &skillsBytes, &a.ExperienceLevel, &a.ResumeText, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.Analysis{}, career.ErrNoAnalysis
		}
		return career.Analysis{}, err
	}
	_ = json.Unmarshal(suggestionsBytes, &a.Suggestions)
	_ = json.Unmarshal(skillsBytes, &a.ExtractedSkills)
	a.CreatedAt = created.UTC()
	return a, nil
}
