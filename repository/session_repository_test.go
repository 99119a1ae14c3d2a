package repository

import (
	"context"
	"testing"

	"lexiforge-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryCreateAndGet(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := &models.DraftSession{
		DocType: models.DocTypeRetainer,
		Fields:  models.NewFieldSet(),
		Role:    models.RoleAdmin,
	}
	require.NoError(t, repo.Create(ctx, session))
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.False(t, session.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, models.DocTypeRetainer, got.DocType)
}

func TestSessionRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := &models.DraftSession{DocType: models.DocTypeRetainer, Fields: models.NewFieldSet(), Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	got.Fields.ClientName = "Mutated"

	// The stored record is untouched until Update is called.
	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Fields.ClientName)
}

func TestSessionRepositoryUpdate(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := &models.DraftSession{DocType: models.DocTypeRetainer, Fields: models.NewFieldSet(), Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, session))

	session.IsFinal = true
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFinal)
}

func TestSessionRepositoryMisses(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, &models.DraftSession{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrNotFound)
}
