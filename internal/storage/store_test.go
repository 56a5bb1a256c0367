package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"tinyfarm_money_v1", true},
		{"tinyfarm_schema_version", true},
		{"", false},
		{"../etc/passwd", false},
		{"Upper", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidKey)
			}
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	value := []byte("123")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = '9'

	got, _, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "123", string(got))

	got[0] = '7'
	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "123", string(again))
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Close())

	assert.ErrorIs(t, m.Set(ctx, "k", []byte("1")), ErrClosed)
	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestFileStore_Layout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	f, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "tinyfarm_money_v1", []byte("10")))

	data, err := os.ReadFile(filepath.Join(dir, "tinyfarm_money_v1.json"))
	require.NoError(t, err)
	assert.Equal(t, "10", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should be left behind")
}

func TestFileStore_ClearKeepsForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	f, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "tinyfarm_money_v1", []byte("10")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("keep"), 0o600))

	require.NoError(t, f.Clear(ctx))

	_, err = os.Stat(filepath.Join(dir, "README.txt"))
	assert.NoError(t, err)
	_, ok, err := f.Get(ctx, "tinyfarm_money_v1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CancelledContext(t *testing.T) {
	f, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, f.Set(ctx, "k", []byte("1")), context.Canceled)
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "farm.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tinyfarm_money_v1", []byte("77")))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "tinyfarm_money_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "77", string(v))
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	assert.Error(t, err)
}
