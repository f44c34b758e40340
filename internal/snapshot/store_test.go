package snapshot

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "grosz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func sampleSnapshot() Snapshot {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	return Snapshot{
		CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Filter:    ledger.Filter{From: &from, Categories: []string{"Paliwo"}},
		Scope: []model.Transaction{
			{ID: 2, Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Category: "Paliwo", Description: "Orlen", Amount: -120},
		},
		EditPath: "grosz-edit.csv",
	}
}

func TestStorePutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleSnapshot()))

	got, err := store.Get(ctx)
	require.NoError(t, err)

	want := sampleSnapshot()
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
	assert.Equal(t, want.Scope, got.Scope)
	assert.Equal(t, want.EditPath, got.EditPath)
	require.NotNil(t, got.Filter.From)
	assert.True(t, got.Filter.From.Equal(*want.Filter.From))
	assert.Equal(t, want.Filter.Categories, got.Filter.Categories)
}

func TestStoreGetEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)
}

func TestStorePutReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleSnapshot()
	require.NoError(t, store.Put(ctx, first))

	second := sampleSnapshot()
	second.EditPath = "other.csv"
	second.Scope = nil
	require.NoError(t, store.Put(ctx, second))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", got.EditPath)
	assert.Empty(t, got.Scope)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleSnapshot()))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)
}

func TestNewStoreRequiresPath(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestNewStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "grosz.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)
}
