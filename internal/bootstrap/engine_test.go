package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/application/port/mocks"
	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/document"
	"github.com/bnema/vitrine/internal/infrastructure/scheduler"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
)

type envMap map[string]string

func (m envMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestNewEngine_DevelopmentUsesAmbientSignal(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	doc := document.NewMemory()
	sched := scheduler.NewManual()

	detector := mocks.NewMockSystemPreferenceDetector(t)
	detector.EXPECT().DetectDarkPreference(mock.Anything).Return(entity.ModeDark).Once()

	engine := NewEngine(ctx, EngineInput{
		StoreKeys:          usecase.DefaultStoreKeys(),
		TransitionDuration: 50 * time.Millisecond,
		KeyValueStore:      kv,
		Document:           doc,
		Scheduler:          sched,
		Detector:           detector,
		Environment:        envMap{usecase.EnvKeyEnv: "development", usecase.EnvKeyDefaultTheme: "sunset"},
	})
	t.Cleanup(engine.Close)

	assert.True(t, engine.Environment.SwitchingEnabled)
	assert.False(t, engine.Environment.Production)

	engine.Manager.Start(ctx)
	sched.Advance(time.Second)

	require.True(t, engine.Manager.Ready())
	assert.Equal(t, entity.PreferenceRecord{Theme: "sunset", Mode: entity.ModeDark}, engine.Manager.Read())
	assert.Equal(t, []string{"dark", "theme-sunset"}, doc.Classes())
}

func TestNewEngine_DeveloperOverrideEnablesSwitching(t *testing.T) {
	kv := storage.NewMemory()
	kv.Put(usecase.DefaultDeveloperOverrideKey, "true")

	engine := NewEngine(context.Background(), EngineInput{
		KeyValueStore: kv,
		Document:      document.NewMemory(),
		Scheduler:     scheduler.NewManual(),
		Environment:   envMap{usecase.EnvKeyEnv: "production"},
	})
	t.Cleanup(engine.Close)

	assert.True(t, engine.Environment.SwitchingEnabled)
	assert.True(t, engine.Environment.Production)
}

func TestNewEngine_HeadlessUsesDefaults(t *testing.T) {
	kv := storage.NewMemory()
	kv.Put(usecase.DefaultDeveloperOverrideKey, "true")

	engine := NewEngine(context.Background(), EngineInput{
		KeyValueStore: kv,
		Document:      document.NewHeadless(),
		Environment:   envMap{usecase.EnvKeyEnv: "development"},
	})
	t.Cleanup(engine.Close)

	assert.Equal(t, entity.DefaultEnvironmentConfig(entity.DefaultThemeSet()), engine.Environment)
}

func TestNewEngine_TimesStartupUntilReady(t *testing.T) {
	ctx := context.Background()
	sched := scheduler.NewManual()

	engine := NewEngine(ctx, EngineInput{
		KeyValueStore: storage.NewMemory(),
		Document:      document.NewMemory(),
		Scheduler:     sched,
		Environment:   envMap{usecase.EnvKeyEnv: "production"},
	})
	t.Cleanup(engine.Close)

	engine.Manager.Start(ctx)
	engine.Manager.SetMode(ctx, entity.ModeDark)
	assert.Equal(t, []string{"environment", "wiring"}, engine.timer.Phases(),
		"a mutation before initialization must not end the startup window")

	sched.Advance(time.Second)
	require.True(t, engine.Manager.Ready())
	assert.Equal(t, []string{"environment", "wiring", "initialize"}, engine.timer.Phases())

	engine.Manager.ToggleMode(ctx)
	assert.Len(t, engine.timer.Phases(), 3)
}

func TestStartupTimer_FinishReportsOnce(t *testing.T) {
	timer := NewStartupTimer()
	timer.Mark("first")

	assert.True(t, timer.Finish(context.Background(), "last", true))
	total := timer.Total()
	assert.False(t, timer.Finish(context.Background(), "again", false))
	timer.Mark("late")

	assert.Equal(t, []string{"first", "last"}, timer.Phases())
	assert.Equal(t, total, timer.Total())
}
