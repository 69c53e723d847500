package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

// DefaultTransitionDuration bounds how long the transition marker stays on the
// document. It must outlast the longest CSS transition scoped to the marker.
const DefaultTransitionDuration = 350 * time.Millisecond

// ApplyAppearanceConfig configures ApplyAppearanceUseCase.
type ApplyAppearanceConfig struct {
	Themes             entity.ThemeSet
	TransitionsEnabled bool
	TransitionDuration time.Duration
}

// ApplyAppearanceUseCase synchronizes a {theme, mode} pair onto the document
// root tags and bounds the visual transition.
type ApplyAppearanceUseCase struct {
	sink      port.DocumentStyleSink
	scheduler port.Scheduler
	cfg       ApplyAppearanceConfig

	mu            sync.Mutex
	cancelCleanup port.CancelFunc
}

// NewApplyAppearanceUseCase creates the document applier.
func NewApplyAppearanceUseCase(
	sink port.DocumentStyleSink,
	scheduler port.Scheduler,
	cfg ApplyAppearanceConfig,
) *ApplyAppearanceUseCase {
	if cfg.TransitionDuration <= 0 {
		cfg.TransitionDuration = DefaultTransitionDuration
	}
	return &ApplyAppearanceUseCase{
		sink:      sink,
		scheduler: scheduler,
		cfg:       cfg,
	}
}

// Guard hides the document until a theme tag is present, so the first paint
// never shows the default-styled page before the preference is applied.
func (uc *ApplyAppearanceUseCase) Guard(ctx context.Context) {
	uc.withSink(ctx, "guard", func(sink port.DocumentStyleSink) {
		if uc.hasThemeTag(sink) {
			sink.SetVisible(true)
			return
		}
		sink.SetVisible(false)
	})
}

// Apply replaces the theme and mode tags on the document root. It returns
// before the transition marker is removed.
func (uc *ApplyAppearanceUseCase) Apply(ctx context.Context, theme entity.ThemeID, mode entity.Mode) {
	log := logging.FromContext(ctx)

	uc.withSink(ctx, "apply", func(sink port.DocumentStyleSink) {
		if uc.cfg.TransitionsEnabled {
			sink.AddClass(entity.TransitionClassName)
		}

		for _, name := range uc.cfg.Themes.ClassNames() {
			sink.RemoveClass(name)
		}
		for _, m := range entity.Modes() {
			sink.RemoveClass(m.ClassName())
		}

		sink.AddClass(theme.ClassName())
		sink.AddClass(mode.ClassName())
		sink.SetVisible(true)

		if uc.cfg.TransitionsEnabled {
			uc.scheduleCleanup(ctx)
		}

		log.Debug().Str("theme", string(theme)).Str("mode", string(mode)).Msg("appearance applied to document")
	})
}

// Close cancels a pending transition cleanup.
func (uc *ApplyAppearanceUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cancelCleanup != nil {
		uc.cancelCleanup()
		uc.cancelCleanup = nil
	}
}

// scheduleCleanup replaces any pending marker removal with a fresh one, so the
// marker stays on for the union of overlapping transition windows.
func (uc *ApplyAppearanceUseCase) scheduleCleanup(ctx context.Context) {
	if uc.scheduler == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.cancelCleanup != nil {
		uc.cancelCleanup()
	}
	uc.cancelCleanup = uc.scheduler.AfterFunc(uc.cfg.TransitionDuration, func() {
		uc.withSink(ctx, "transition cleanup", func(sink port.DocumentStyleSink) {
			sink.RemoveClass(entity.TransitionClassName)
		})
	})
}

func (uc *ApplyAppearanceUseCase) hasThemeTag(sink port.DocumentStyleSink) bool {
	for _, name := range uc.cfg.Themes.ClassNames() {
		if sink.HasClass(name) {
			return true
		}
	}
	return false
}

// withSink runs fn when a host document exists, recovering from host binding panics.
func (uc *ApplyAppearanceUseCase) withSink(ctx context.Context, op string, fn func(port.DocumentStyleSink)) {
	if uc.sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Warn().Interface("panic", r).Str("op", op).Msg("document update failed")
		}
	}()
	if !uc.sink.Available() {
		return
	}
	fn(uc.sink)
}
