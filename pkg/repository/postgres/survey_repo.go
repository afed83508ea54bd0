package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsmylie/NextObjective/pkg/survey"
)

// SurveyRepository stores survey responses; the most recent per user wins.
type SurveyRepository struct {
	pool *pgxpool.Pool
}

func NewSurveyRepository(pool *pgxpool.Pool) (*SurveyRepository, error) {
	r := &SurveyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SurveyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS survey_responses (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	responses JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS survey_responses_user_created_idx
	ON survey_responses (user_id, created_at DESC);
`)
	return err
}

func (r *SurveyRepository) Create(ctx context.Context, resp survey.Response) error {
	responsesJSON, err := json.Marshal(resp.Responses)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO survey_responses (id, user_id, responses, created_at)
VALUES ($1, $2, $3, $4)
`, resp.ID, resp.UserID, responsesJSON, resp.CreatedAt)
	return err
}

func (r *SurveyRepository) LatestByUser(ctx context.Context, userID string) (survey.Response, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, responses, created_at
FROM survey_responses
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`, userID)
	var resp survey.Response
	var responsesBytes []byte
	var created time.Time
	if err := row.Scan(&resp.ID, &resp.UserID, &responsesBytes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return survey.Response{}, survey.ErrNotFound
		}
		return survey.Response{}, err
	}
	_ = json.Unmarshal(responsesBytes, &resp.Responses)
	resp.CreatedAt = created.UTC()
	return resp, nil
}
