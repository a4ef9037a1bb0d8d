package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	badger, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = badger.Close() })

	return map[string]Store{
		"badger": badger,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundtrip(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("v1")))

			got, ok, err := store.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("v1"), got)

			require.NoError(t, store.Set("k", []byte("v2")))
			got, _, err = store.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), got)
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			got, ok, err := store.Get("absent")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("v")))
			require.NoError(t, store.Delete("k"))

			_, ok, err := store.Get("k")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is not an error.
			require.NoError(t, store.Delete("k"))
		})
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("durable")))
	require.NoError(t, store.Close())

	store, err = OpenBadger(dir)
	require.NoError(t, err)
	defer store.Close()

	got, ok, err := store.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("durable"), got)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("k", []byte("abc")))

	got, _, err := store.Get("k")
	require.NoError(t, err)
	got[0] = 'z'

	again, _, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
