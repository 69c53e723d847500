package bootstrap

import (
	"context"
	"time"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
	"github.com/bnema/vitrine/internal/ui/theme"
)

// EngineInput holds the host adapters the engine runs on.
type EngineInput struct {
	Themes             entity.ThemeSet
	StoreKeys          usecase.StoreKeys
	TransitionDuration time.Duration

	KeyValueStore port.KeyValueStore
	Document      port.DocumentStyleSink
	Scheduler     port.Scheduler
	Detector      port.SystemPreferenceDetector
	Environment   port.EnvironmentSource
}

// Engine is the wired appearance engine of one process.
type Engine struct {
	Environment entity.EnvironmentConfig
	Store       *usecase.PreferenceStore
	Applier     *usecase.ApplyAppearanceUseCase
	Manager     *theme.Manager

	timer *StartupTimer
}

// NewEngine resolves the deployment configuration and builds an uninitialized
// theme.Manager. Call Manager.Start or Manager.Initialize to bring it up.
func NewEngine(ctx context.Context, in EngineInput) *Engine {
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	if in.Themes.Len() == 0 {
		in.Themes = entity.DefaultThemeSet()
	}

	store := usecase.NewPreferenceStore(in.KeyValueStore, in.Themes, in.StoreKeys)

	env := usecase.NewEnvironmentProvider(usecase.ResolveEnvironmentInput{
		Source:            in.Environment,
		Themes:            in.Themes,
		HasHostDocument:   hasHostDocument(in.Document),
		DeveloperOverride: store.LoadDeveloperOverride,
	}).Get(ctx)
	timer.Mark("environment")

	applier := usecase.NewApplyAppearanceUseCase(in.Document, in.Scheduler, usecase.ApplyAppearanceConfig{
		Themes:             in.Themes,
		TransitionsEnabled: env.TransitionsEnabled,
		TransitionDuration: in.TransitionDuration,
	})

	manager := theme.NewManager(theme.Deps{
		Themes:      in.Themes,
		Environment: env,
		Store:       store,
		Initializer: usecase.NewInitializePreferenceUseCase(store, env, in.Detector),
		Applier:     applier,
		Scheduler:   in.Scheduler,
	})
	timer.Mark("wiring")

	log.Debug().
		Int("themes", in.Themes.Len()).
		Bool("production", env.Production).
		Msg("appearance engine wired")

	e := &Engine{
		Environment: env,
		Store:       store,
		Applier:     applier,
		Manager:     manager,
		timer:       timer,
	}
	// Mutations before initialization also notify; only the ready
	// notification closes the startup window.
	manager.Subscribe(func(entity.PreferenceRecord) {
		if manager.Ready() {
			timer.Finish(ctx, "initialize", env.Debug)
		}
	})
	return e
}

// Close cancels every pending deferred task of the engine.
func (e *Engine) Close() {
	e.Manager.Close()
}

func hasHostDocument(doc port.DocumentStyleSink) (ok bool) {
	if doc == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return doc.Available()
}
