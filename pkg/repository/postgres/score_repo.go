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

// ScoreRepository stores career scores. The current score for a
// (user, career path) pair is the latest row by created_at.
type ScoreRepository struct {
	pool *pgxpool.Pool
}

func NewScoreRepository(pool *pgxpool.Pool) (*ScoreRepository, error) {
	r := &ScoreRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ScoreRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS career_scores (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	career_path TEXT NOT NULL,
	current_score DOUBLE PRECISION NOT NULL,
	max_score DOUBLE PRECISION NOT NULL DEFAULT 100,
	skill_gaps JSONB NOT NULL,
	strength_areas JSONB NOT NULL,
	recommendations JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS career_scores_user_path_created_idx
	ON career_scores (user_id, career_path, created_at DESC);
`)
	return err
}

func (r *ScoreRepository) Create(ctx context.Context, s career.Score) error {
	gapsJSON, err := json.Marshal(s.SkillGaps)
	if err != nil {
		return err
	}
	strengthsJSON, err := json.Marshal(s.StrengthAreas)
	if err != nil {
		return err
	}
	recsJSON, err := json.Marshal(s.Recommendations)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO career_scores (id, user_id, career_path, current_score, max_score, skill_gaps, strength_areas, recommendations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, s.ID, s.UserID, s.CareerPath, s.CurrentScore, s.MaxScore, gapsJSON, strengthsJSON, recsJSON, s.CreatedAt)
	return err
}

func (r *ScoreRepository) LatestByUser(ctx context.Context, userID string) (career.Score, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, career_path, current_score, max_score, skill_gaps, strength_areas, recommendations, created_at
FROM career_scores
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`, userID)
	return scanScore(row)
}

// ApplyProgress bumps the current score of the latest (user, career path)
// row in one conditional UPDATE, capped at max_score. Running the
// read-modify-write inside the database closes the race between concurrent
// progress submissions for the same pair. A missing row reports (false, nil).
func (r *ScoreRepository) ApplyProgress(ctx context.Context, userID, careerPath string, delta float64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE career_scores
SET current_score = LEAST(max_score, current_score + $3)
WHERE id = (
	SELECT id FROM career_scores
	WHERE user_id = $1 AND career_path = $2
	ORDER BY created_at DESC, id DESC
	LIMIT 1
)
`, userID, careerPath, delta)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanScore(row pgx.Row) (career.Score, error) {
	var s career.Score
	var gapsBytes, strengthsBytes, recsBytes []byte
	var created time.Time
	if err := row.Scan(&s.ID, &s.UserID, &s.CareerPath, &s.CurrentScore, &s.MaxScore, &gapsBytes, &strengthsBytes, &recsBytes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return career.Score{}, career.ErrNoScore
		}
		return career.Score{}, err
	}
	_ = json.Unmarshal(gapsBytes, &s.SkillGaps)
	_ = json.Unmarshal(strengthsBytes, &s.StrengthAreas)
	_ = json.Unmarshal(recsBytes, &s.Recommendations)
	s.CreatedAt = created.UTC()
	return s, nil
}
