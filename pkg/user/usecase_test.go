package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct{ items []User }

func (m *memRepo) Create(_ context.Context, u User) error {
	m.items = append(m.items, u)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	for _, u := range m.items {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "  Jane.Doe@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@example.com", u.Email)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	require.Len(t, repo.items, 1)
}

func TestRegisterWithoutEmail(t *testing.T) {
	svc := NewService(&memRepo{})

	u, err := svc.Register(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, u.Email)
	assert.NotEqual(t, uuid.Nil, u.ID)
}

func TestGetRoundTrip(t *testing.T) {
	svc := NewService(&memRepo{})

	created, err := svc.Register(context.Background(), "jane@example.com")
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUnknownID(t *testing.T) {
	svc := NewService(&memRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
