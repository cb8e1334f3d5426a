package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	apperrors "maintenance-system/pkg/errors"
)

func TestRequestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(store.NewMemoryStore())

	requests, err := repo.GetRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)

	require.NoError(t, repo.AddRequest(ctx, entities.MaintenanceRequest{ID: "r1", Subject: "Oil Leak"}))
	require.NoError(t, repo.AddRequest(ctx, entities.MaintenanceRequest{ID: "r2", Subject: "Flickering"}))

	requests, err = repo.GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "r1", requests[0].ID, "порядок вставки сохраняется")

	found, err := repo.FindRequest(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "Flickering", found.Subject)

	updated, err := repo.UpdateRequest(ctx, "r1", func(r *entities.MaintenanceRequest) {
		r.Subject = "Oil Leak Detected"
	})
	require.NoError(t, err)
	assert.Equal(t, "Oil Leak Detected", updated.Subject)

	require.NoError(t, repo.DeleteRequest(ctx, "r1"))
	_, err = repo.FindRequest(ctx, "r1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	requests, err = repo.GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "r2", requests[0].ID)
}

func TestRequestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(store.NewMemoryStore())

	_, err := repo.FindRequest(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.UpdateRequest(ctx, "missing", func(r *entities.MaintenanceRequest) {})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteRequest(ctx, "missing"), apperrors.ErrNotFound)
}
