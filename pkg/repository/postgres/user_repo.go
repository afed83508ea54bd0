package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsmylie/NextObjective/pkg/user"
)

// UserRepository implements user.Repository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	var email *string
	if u.Email != "" {
		email = &u.Email
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, created_at)
		VALUES ($1, $2, $3)
	`, u.ID, email, u.CreatedAt)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, created_at
		FROM users WHERE id = $1
	`, id)
	var u user.User
	var email *string
	var createdAt time.Time
	if err := row.Scan(&u.ID, &email, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if email != nil {
		u.Email = *email
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
