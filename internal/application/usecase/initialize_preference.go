package usecase

import (
	"context"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

// Resolution sources reported by InitializePreferenceUseCase.
const (
	SourceStored     = "stored"
	SourceDeployment = "deployment"
	SourceAmbient    = "ambient"
	SourceFallback   = "fallback"
)

// InitializePreferenceOutput is the startup preference and where it came from.
type InitializePreferenceOutput struct {
	Record entity.PreferenceRecord
	Source string
}

// InitializePreferenceUseCase resolves the startup preference from the store,
// the deployment configuration and the ambient signal.
//
// Priority: stored choice > deployment default (production) > ambient signal
// (non-production) > hard-coded fallback (store unavailable).
type InitializePreferenceUseCase struct {
	store    *PreferenceStore
	env      entity.EnvironmentConfig
	detector port.SystemPreferenceDetector
}

// NewInitializePreferenceUseCase creates the initializer.
func NewInitializePreferenceUseCase(
	store *PreferenceStore,
	env entity.EnvironmentConfig,
	detector port.SystemPreferenceDetector,
) *InitializePreferenceUseCase {
	return &InitializePreferenceUseCase{
		store:    store,
		env:      env,
		detector: detector,
	}
}

// Execute returns the resolved record. It never fails.
func (uc *InitializePreferenceUseCase) Execute(ctx context.Context) InitializePreferenceOutput {
	log := logging.FromContext(ctx)

	if !uc.env.PersistenceEnabled || !uc.store.IsAvailable(ctx) {
		out := InitializePreferenceOutput{Record: uc.env.DefaultRecord(), Source: SourceFallback}
		log.Debug().
			Str("record", out.Record.String()).
			Bool("persistence_enabled", uc.env.PersistenceEnabled).
			Msg("preference storage unavailable, using deployment defaults")
		return out
	}

	if stored, ok := uc.store.Load(ctx); ok {
		log.Debug().Str("record", stored.String()).Msg("using stored appearance preference")
		return InitializePreferenceOutput{Record: stored, Source: SourceStored}
	}

	out := InitializePreferenceOutput{
		Record: entity.PreferenceRecord{Theme: uc.env.DefaultTheme, Mode: uc.env.DefaultMode},
		Source: SourceDeployment,
	}
	if !uc.env.Production {
		out.Record.Mode = uc.ambientMode(ctx)
		out.Source = SourceAmbient
	}

	// Persist now so the next load resolves to the same value.
	uc.store.Save(ctx, out.Record)

	log.Debug().
		Str("record", out.Record.String()).
		Str("source", out.Source).
		Msg("resolved initial appearance preference")

	return out
}

func (uc *InitializePreferenceUseCase) ambientMode(ctx context.Context) entity.Mode {
	if uc.detector == nil {
		return entity.ModeLight
	}
	if mode := uc.detector.DetectDarkPreference(ctx); mode.IsValid() {
		return mode
	}
	return entity.ModeLight
}
