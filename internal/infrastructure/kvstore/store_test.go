package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, KeyProducts, []byte(`[{"id":"p1"}]`)))

	value, err := store.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(value))

	require.NoError(t, store.Delete(ctx, KeyProducts))

	_, err = store.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, KeyProducts, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, KeySales, []byte(`[]`)))

	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = store.Get(ctx, KeySales)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStoreCopiesValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte(`original`)
	require.NoError(t, store.Set(ctx, KeySettings, buf))

	buf[0] = 'X'

	value, err := store.Get(ctx, KeySettings)
	require.NoError(t, err)
	assert.Equal(t, `original`, string(value))
}
