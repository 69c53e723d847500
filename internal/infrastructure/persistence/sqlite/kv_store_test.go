package sqlite_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
	"github.com/bnema/vitrine/internal/logging"
)

func testCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("debug")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func newTestKV(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "vitrine.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestKeyValueStore_CRUD(t *testing.T) {
	ctx, lazy := newTestKV(t)
	kv := sqlite.NewKeyValueStore(ctx, lazy)

	_, ok, err := kv.GetItem("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.SetItem("vitrine.appearance", `{"theme":"ocean","mode":"dark"}`))
	value, ok, err := kv.GetItem("vitrine.appearance")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"ocean","mode":"dark"}`, value)

	require.NoError(t, kv.SetItem("vitrine.appearance", `{"theme":"forest","mode":"light"}`))
	value, _, err = kv.GetItem("vitrine.appearance")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"forest","mode":"light"}`, value)

	require.NoError(t, kv.RemoveItem("vitrine.appearance"))
	_, ok, err = kv.GetItem("vitrine.appearance")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is not an error.
	assert.NoError(t, kv.RemoveItem("vitrine.appearance"))
}

func TestKeyValueStore_QuotaExceeded(t *testing.T) {
	ctx, lazy := newTestKV(t)
	kv := sqlite.NewKeyValueStore(ctx, lazy)

	err := kv.SetItem("big", strings.Repeat("x", sqlite.DefaultMaxValueSize+1))
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)
	assert.False(t, lazy.IsInitialized(), "oversized writes are rejected before opening the database")
}

func TestKeyValueStore_Unavailable(t *testing.T) {
	ctx := testCtx()

	kv := sqlite.NewKeyValueStore(ctx, nil)
	_, _, err := kv.GetItem("k")
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	kv = sqlite.NewKeyValueStore(ctx, sqlite.NewLazyDB(""))
	assert.ErrorIs(t, kv.SetItem("k", "v"), storage.ErrUnavailable)
	assert.ErrorIs(t, kv.RemoveItem("k"), storage.ErrUnavailable)
}

func TestKeyValueStore_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "vitrine.sqlite")
	themes := entity.DefaultThemeSet()

	first := sqlite.NewLazyDB(path)
	store := usecase.NewPreferenceStore(sqlite.NewKeyValueStore(ctx, first), themes, usecase.DefaultStoreKeys())
	require.True(t, store.IsAvailable(ctx))
	require.True(t, store.Save(ctx, entity.PreferenceRecord{Theme: "sunset", Mode: entity.ModeDark}))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(path)
	t.Cleanup(func() { _ = second.Close() })
	store = usecase.NewPreferenceStore(sqlite.NewKeyValueStore(ctx, second), themes, usecase.DefaultStoreKeys())

	record, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, entity.PreferenceRecord{Theme: "sunset", Mode: entity.ModeDark}, record)
}
