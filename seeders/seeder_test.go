package seeders

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
)

func TestRun_SeedsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStore()

	require.NoError(t, Run(ctx, storage))

	doc, err := storage.GetAll(ctx, store.CollectionTeams)
	require.NoError(t, err)
	var teams []entities.MaintenanceTeam
	require.NoError(t, json.Unmarshal(doc, &teams))
	assert.Len(t, teams, 3)

	doc, err = storage.GetAll(ctx, store.CollectionRequests)
	require.NoError(t, err)
	var requests []entities.MaintenanceRequest
	require.NoError(t, json.Unmarshal(doc, &requests))
	assert.Len(t, requests, 6)
}

func TestRun_DoesNotTouchPopulatedCollections(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStore()

	custom := []byte(`[{"id":"custom1","name":"My Team"}]`)
	require.NoError(t, storage.SetAll(ctx, store.CollectionTeams, custom))

	require.NoError(t, Run(ctx, storage))

	doc, err := storage.GetAll(ctx, store.CollectionTeams)
	require.NoError(t, err)
	assert.JSONEq(t, string(custom), string(doc))

	// Остальные коллекции при этом наполняются
	doc, err = storage.GetAll(ctx, store.CollectionEquipment)
	require.NoError(t, err)
	var equipment []entities.Equipment
	require.NoError(t, json.Unmarshal(doc, &equipment))
	assert.Len(t, equipment, 5)
}
