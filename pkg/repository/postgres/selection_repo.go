package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsmylie/NextObjective/pkg/career"
)

// SelectionRepository stores the append-only log of career path choices.
type SelectionRepository struct {
	pool *pgxpool.Pool
}

func NewSelectionRepository(pool *pgxpool.Pool) (*SelectionRepository, error) {
	r := &SelectionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SelectionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS career_selections (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	career_path TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *SelectionRepository) Create(ctx context.Context, sel career.Selection) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO career_selections (id, user_id, career_path, created_at)
VALUES ($1, $2, $3, $4)
`, uuid.New(), sel.UserID, sel.CareerPath, sel.CreatedAt)
	return err
}
