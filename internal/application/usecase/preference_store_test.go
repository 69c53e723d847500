package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/application/port/mocks"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
)

func newTestStore(kv *storage.Memory) *PreferenceStore {
	return NewPreferenceStore(kv, entity.DefaultThemeSet(), DefaultStoreKeys())
}

func TestPreferenceStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	themes := entity.DefaultThemeSet()

	for _, id := range themes.IDs() {
		for _, mode := range entity.Modes() {
			kv := storage.NewMemory()
			store := newTestStore(kv)
			record := entity.PreferenceRecord{Theme: id, Mode: mode}

			require.True(t, store.Save(ctx, record))
			got, ok := store.Load(ctx)
			require.True(t, ok)
			assert.Equal(t, record, got)
		}
	}
}

func TestPreferenceStore_SavedFormat(t *testing.T) {
	kv := storage.NewMemory()
	store := newTestStore(kv)

	require.True(t, store.Save(context.Background(), entity.PreferenceRecord{Theme: "sunset", Mode: entity.ModeDark}))
	assert.JSONEq(t, `{"theme":"sunset","mode":"dark"}`, kv.Raw(DefaultPreferenceKey))
}

func TestPreferenceStore_LoadMissing(t *testing.T) {
	store := newTestStore(storage.NewMemory())

	_, ok := store.Load(context.Background())
	assert.False(t, ok)
}

func TestPreferenceStore_CorruptionSelfHeals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "invalid json", raw: "{not json"},
		{name: "unknown theme", raw: `{"theme":"neon","mode":"dark"}`},
		{name: "unknown mode", raw: `{"theme":"ocean","mode":"sepia"}`},
		{name: "wrong shape", raw: `["ocean","dark"]`},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemory()
			kv.Put(DefaultPreferenceKey, tt.raw)
			store := newTestStore(kv)

			_, ok := store.Load(context.Background())

			assert.False(t, ok)
			assert.False(t, kv.Has(DefaultPreferenceKey))
		})
	}
}

func TestPreferenceStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := newTestStore(kv)

	require.True(t, store.Save(ctx, entity.PreferenceRecord{Theme: "ocean", Mode: entity.ModeLight}))
	assert.True(t, store.Clear(ctx))
	assert.False(t, kv.Has(DefaultPreferenceKey))

	kv.SetDisabled(true)
	assert.False(t, store.Clear(ctx))
}

func TestPreferenceStore_SaveQuotaExceeded(t *testing.T) {
	kv := storage.NewMemory().WithQuota(8)
	store := newTestStore(kv)

	ok := store.Save(context.Background(), entity.PreferenceRecord{Theme: "ocean", Mode: entity.ModeLight})

	assert.False(t, ok)
	assert.False(t, kv.Has(DefaultPreferenceKey))
}

func TestPreferenceStore_IsAvailable(t *testing.T) {
	ctx := context.Background()

	kv := storage.NewMemory()
	assert.True(t, newTestStore(kv).IsAvailable(ctx))
	assert.False(t, kv.Has(DefaultPreferenceKey+probeKeySuffix), "probe key must be removed")

	kv.SetDisabled(true)
	assert.False(t, newTestStore(kv).IsAvailable(ctx))

	assert.False(t, NewPreferenceStore(nil, entity.DefaultThemeSet(), DefaultStoreKeys()).IsAvailable(ctx))
}

func TestPreferenceStore_ProbeWritesThenRemoves(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	probe := DefaultPreferenceKey + probeKeySuffix

	setCall := kv.EXPECT().SetItem(probe, mock.Anything).Return(nil).Once()
	kv.EXPECT().RemoveItem(probe).Return(nil).Once().NotBefore(setCall)

	store := NewPreferenceStore(kv, entity.DefaultThemeSet(), DefaultStoreKeys())
	assert.True(t, store.IsAvailable(context.Background()))
}

func TestPreferenceStore_ProbeRemoveFails(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().SetItem(mock.Anything, mock.Anything).Return(nil)
	kv.EXPECT().RemoveItem(mock.Anything).Return(errors.New("SecurityError"))

	store := NewPreferenceStore(kv, entity.DefaultThemeSet(), DefaultStoreKeys())
	assert.False(t, store.IsAvailable(context.Background()))
}

func TestPreferenceStore_NeverPanics(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().GetItem(mock.Anything).RunAndReturn(func(string) (string, bool, error) {
		panic("localStorage is not defined")
	}).Maybe()
	kv.EXPECT().SetItem(mock.Anything, mock.Anything).RunAndReturn(func(string, string) error {
		panic("QuotaExceededError")
	}).Maybe()
	kv.EXPECT().RemoveItem(mock.Anything).Return(errors.New("denied")).Maybe()

	store := NewPreferenceStore(kv, entity.DefaultThemeSet(), DefaultStoreKeys())

	assert.NotPanics(t, func() {
		assert.False(t, store.Save(ctx, entity.PreferenceRecord{Theme: "ocean", Mode: entity.ModeDark}))
		_, ok := store.Load(ctx)
		assert.False(t, ok)
		assert.False(t, store.Clear(ctx))
		assert.False(t, store.IsAvailable(ctx))
		assert.False(t, store.LoadDeveloperOverride(ctx))
		assert.False(t, store.SetDeveloperOverride(ctx, true))
	})
}

func TestPreferenceStore_DeveloperOverride(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	store := newTestStore(kv)

	assert.False(t, store.LoadDeveloperOverride(ctx))

	require.True(t, store.SetDeveloperOverride(ctx, true))
	assert.True(t, store.LoadDeveloperOverride(ctx))

	kv.Put(DefaultDeveloperOverrideKey, "no")
	assert.False(t, store.LoadDeveloperOverride(ctx))

	require.True(t, store.SetDeveloperOverride(ctx, false))
	assert.False(t, kv.Has(DefaultDeveloperOverrideKey))
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on", "enabled"} {
		assert.True(t, IsTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "maybe"} {
		assert.False(t, IsTruthy(v), v)
	}
}
