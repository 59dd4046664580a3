package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoad(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	payload := []byte(`[{"id":"1"}]`)

	require.NoError(t, store.Save(ctx, KeyAppointments, payload))

	got, err := store.Load(ctx, KeyAppointments)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), KeyFinances)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, KeyUsers, []byte(`["old"]`)))
	require.NoError(t, store.Save(ctx, KeyUsers, []byte(`["new"]`)))

	got, err := store.Load(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), got)
}
