// Package storetest holds the behavior every storage.Store backend must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Owennied/HimmyGames/internal/storage"
)

// Run exercises get/set/delete/clear against a fresh, empty store
func Run(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get(ctx, "absent_key")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "tinyfarm_money_v1", []byte("42")))

		v, ok, err := store.Get(ctx, "tinyfarm_money_v1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "42", string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "tinyfarm_name_v1", []byte(`"Old"`)))
		require.NoError(t, store.Set(ctx, "tinyfarm_name_v1", []byte(`"New"`)))

		v, ok, err := store.Get(ctx, "tinyfarm_name_v1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `"New"`, string(v))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "to_delete", []byte("1")))
		require.NoError(t, store.Delete(ctx, "to_delete"))

		_, ok, err := store.Get(ctx, "to_delete")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Delete(ctx, "to_delete"), "deleting a missing key is not an error")
	})

	t.Run("invalid key", func(t *testing.T) {
		assert.ErrorIs(t, store.Set(ctx, "../escape", []byte("x")), storage.ErrInvalidKey)
		_, _, err := store.Get(ctx, "")
		assert.ErrorIs(t, err, storage.ErrInvalidKey)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a_key", []byte("1")))
		require.NoError(t, store.Set(ctx, "b_key", []byte("2")))
		require.NoError(t, store.Clear(ctx))

		for _, k := range []string{"a_key", "b_key", "tinyfarm_money_v1"} {
			_, ok, err := store.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, ok, "key %s should be cleared", k)
		}
	})
}
