package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/application/port/mocks"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/document"
	"github.com/bnema/vitrine/internal/infrastructure/scheduler"
)

func newTestApplier(doc *document.Memory, sched *scheduler.Manual, transitions bool) *ApplyAppearanceUseCase {
	return NewApplyAppearanceUseCase(doc, sched, ApplyAppearanceConfig{
		Themes:             entity.DefaultThemeSet(),
		TransitionsEnabled: transitions,
		TransitionDuration: 300 * time.Millisecond,
	})
}

func countTags(doc *document.Memory) (themes, modes int) {
	for _, name := range doc.Classes() {
		switch name {
		case "light", "dark":
			modes++
		case entity.TransitionClassName:
		default:
			themes++
		}
	}
	return themes, modes
}

func TestApply_SetsExactlyOneThemeAndMode(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	uc.Apply(ctx, "sunset", entity.ModeDark)
	sched.Advance(time.Second)

	assert.Equal(t, []string{"dark", "theme-sunset"}, doc.Classes())
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	once := document.NewMemory()
	twice := document.NewMemory()
	sched := scheduler.NewManual()

	newTestApplier(once, sched, true).Apply(ctx, "forest", entity.ModeLight)
	applier := newTestApplier(twice, sched, true)
	applier.Apply(ctx, "forest", entity.ModeLight)
	applier.Apply(ctx, "forest", entity.ModeLight)
	sched.Advance(time.Second)

	assert.Equal(t, once.Classes(), twice.Classes())
}

func TestApply_ExclusivityOverRandomSequences(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)
	themes := entity.DefaultThemeSet().IDs()
	rng := rand.New(rand.NewSource(42))

	// Stale tags from a previous render must be cleared too.
	doc.AddClass("theme-ocean")
	doc.AddClass("theme-forest")
	doc.AddClass("light")
	doc.AddClass("dark")

	for i := 0; i < 200; i++ {
		theme := themes[rng.Intn(len(themes))]
		mode := entity.Modes()[rng.Intn(2)]

		uc.Apply(ctx, theme, mode)
		sched.Advance(time.Duration(rng.Intn(400)) * time.Millisecond)

		themeTags, modeTags := countTags(doc)
		assert.Equal(t, 1, themeTags, "iteration %d", i)
		assert.Equal(t, 1, modeTags, "iteration %d", i)
		assert.True(t, doc.HasClass(theme.ClassName()))
		assert.True(t, doc.HasClass(mode.ClassName()))
	}
}

func TestApply_TransitionMarkerLifecycle(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	uc.Apply(ctx, "ocean", entity.ModeLight)

	history := doc.History()
	assert.Equal(t, "+"+entity.TransitionClassName, history[0], "marker must be added before any tag changes")
	assert.True(t, doc.HasClass(entity.TransitionClassName))

	sched.Advance(299 * time.Millisecond)
	assert.True(t, doc.HasClass(entity.TransitionClassName))

	sched.Advance(time.Millisecond)
	assert.False(t, doc.HasClass(entity.TransitionClassName))
}

func TestApply_OverlappingTransitionsKeepMarkerForUnion(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	uc.Apply(ctx, "ocean", entity.ModeLight)
	sched.Advance(200 * time.Millisecond)
	uc.Apply(ctx, "ocean", entity.ModeDark)

	// The first window would have ended here.
	sched.Advance(150 * time.Millisecond)
	assert.True(t, doc.HasClass(entity.TransitionClassName))

	sched.Advance(150 * time.Millisecond)
	assert.False(t, doc.HasClass(entity.TransitionClassName))
	assert.Zero(t, sched.Pending())
}

func TestApply_ReschedulesCleanupOnOverlap(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sched := mocks.NewMockScheduler(ctrl)

	cancelled := 0
	gomock.InOrder(
		sched.EXPECT().AfterFunc(300*time.Millisecond, gomock.Any()).
			Return(port.CancelFunc(func() { cancelled++ })),
		sched.EXPECT().AfterFunc(300*time.Millisecond, gomock.Any()).
			Return(port.CancelFunc(func() {})),
	)

	uc := NewApplyAppearanceUseCase(document.NewMemory(), sched, ApplyAppearanceConfig{
		Themes:             entity.DefaultThemeSet(),
		TransitionsEnabled: true,
		TransitionDuration: 300 * time.Millisecond,
	})
	uc.Apply(ctx, "ocean", entity.ModeLight)
	uc.Apply(ctx, "ocean", entity.ModeDark)

	assert.Equal(t, 1, cancelled, "the first cleanup must be cancelled before the second is scheduled")
}

func TestApply_TransitionsDisabled(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()

	newTestApplier(doc, sched, false).Apply(ctx, "ocean", entity.ModeDark)

	assert.False(t, doc.HasClass(entity.TransitionClassName))
	assert.Zero(t, sched.Pending())
}

func TestApply_HeadlessIsNoop(t *testing.T) {
	ctx := context.Background()
	doc := document.NewHeadless()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	assert.NotPanics(t, func() {
		uc.Guard(ctx)
		uc.Apply(ctx, "ocean", entity.ModeDark)
	})
	assert.Empty(t, doc.Classes())
	assert.Zero(t, sched.Pending())

	assert.NotPanics(t, func() {
		NewApplyAppearanceUseCase(nil, nil, ApplyAppearanceConfig{Themes: entity.DefaultThemeSet()}).
			Apply(ctx, "ocean", entity.ModeDark)
	})
}

func TestGuard_HidesUntilThemeApplied(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	uc.Guard(ctx)
	assert.False(t, doc.Visible())

	uc.Apply(ctx, "forest", entity.ModeLight)
	assert.True(t, doc.Visible())
}

func TestGuard_VisibleWhenThemeAlreadyPresent(t *testing.T) {
	doc := document.NewMemory()
	doc.AddClass("theme-sunset")
	doc.SetVisible(false)

	newTestApplier(doc, scheduler.NewManual(), true).Guard(context.Background())

	assert.True(t, doc.Visible())
}

func TestApply_CloseCancelsCleanup(t *testing.T) {
	ctx := context.Background()
	doc := document.NewMemory()
	sched := scheduler.NewManual()
	uc := newTestApplier(doc, sched, true)

	uc.Apply(ctx, "ocean", entity.ModeLight)
	uc.Close()

	assert.Zero(t, sched.Pending())
}

type panickingSink struct{ *document.Memory }

func (*panickingSink) AddClass(string) { panic("DOMException") }

func TestApply_RecoversFromSinkPanic(t *testing.T) {
	sink := &panickingSink{Memory: document.NewMemory()}
	uc := NewApplyAppearanceUseCase(sink, scheduler.NewManual(), ApplyAppearanceConfig{
		Themes:             entity.DefaultThemeSet(),
		TransitionsEnabled: true,
	})

	assert.NotPanics(t, func() {
		uc.Apply(context.Background(), "ocean", entity.ModeLight)
	})
}
