package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	doc, err := s.GetAll(ctx, CollectionEquipment)
	require.NoError(t, err)
	assert.Nil(t, doc, "незаписанная коллекция — nil без ошибки")

	payload := []byte(`[{"id":"eq1"}]`)
	require.NoError(t, s.SetAll(ctx, CollectionEquipment, payload))

	doc, err = s.GetAll(ctx, CollectionEquipment)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"eq1"}]`, string(doc))

	// Возвращенный срез — копия, мутация не трогает хранилище
	doc[2] = 'X'
	doc, err = s.GetAll(ctx, CollectionEquipment)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"eq1"}]`, string(doc))

	// Полная замена документа
	require.NoError(t, s.SetAll(ctx, CollectionEquipment, []byte(`[]`)))
	doc, err = s.GetAll(ctx, CollectionEquipment)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(doc))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "maintenance.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SetAll(ctx, CollectionTeams, []byte(`[{"id":"team1","name":"Mechanics"}]`)))
	require.NoError(t, s.SetAll(ctx, CollectionRequests, []byte(`[]`)))

	// Новый экземпляр поверх того же файла видит записанное
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	doc, err := reopened.GetAll(ctx, CollectionTeams)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"team1","name":"Mechanics"}]`, string(doc))

	doc, err = reopened.GetAll(ctx, CollectionRequests)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(doc))

	doc, err = reopened.GetAll(ctx, CollectionCategories)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	doc, err := s.GetAll(ctx, CollectionEquipment)
	require.NoError(t, err)
	assert.Nil(t, doc)
}
