//go:build js && wasm

// Command vitrine-wasm runs the appearance engine inside the page and exposes
// it to the presentation layer as window.vitrineAppearance.
package main

import (
	"context"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/bootstrap"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/browser"
	"github.com/bnema/vitrine/internal/infrastructure/colorscheme"
	"github.com/bnema/vitrine/internal/infrastructure/scheduler"
	"github.com/bnema/vitrine/internal/logging"
	"github.com/bnema/vitrine/internal/ui/theme"
)

const (
	globalName = "vitrineAppearance"
	eventName  = "vitrine:appearance"
)

func main() {
	logCfg := logging.DefaultConfig()
	logCfg.Format = "json"
	logCfg.Output = os.Stdout
	if usecase.IsTruthy(browser.DebugTheme) {
		logCfg.Level = zerolog.DebugLevel
	}
	ctx := logging.WithContext(context.Background(), logging.New(logCfg))
	ctx = logging.WithComponent(ctx, "appearance")

	detector := colorscheme.NewResolver(nil)
	detector.RegisterDetector(browser.NewMediaQueryDetector())

	doc := browser.NewDocumentRoot()
	engine := bootstrap.NewEngine(ctx, bootstrap.EngineInput{
		Themes:             entity.DefaultThemeSet(),
		StoreKeys:          usecase.DefaultStoreKeys(),
		TransitionDuration: usecase.DefaultTransitionDuration,
		KeyValueStore:      browser.NewLocalStorage(),
		Document:           doc,
		Scheduler:          scheduler.NewTimer(),
		Detector:           detector,
		Environment:        browser.NewBuildSource(),
	})

	manager := engine.Manager
	manager.Subscribe(func(r entity.PreferenceRecord) {
		dispatch(doc, manager, r)
	})

	js.Global().Set(globalName, exportAPI(ctx, manager))
	manager.Start(ctx)

	// Keep the runtime alive for callbacks.
	select {}
}

func dispatch(doc *browser.DocumentRoot, manager *theme.Manager, r entity.PreferenceRecord) {
	defer func() { _ = recover() }()
	doc.DispatchEvent(eventName, map[string]any{
		"theme": string(r.Theme),
		"mode":  string(r.Mode),
		"ready": manager.Ready(),
	})
}

func exportAPI(ctx context.Context, manager *theme.Manager) js.Value {
	themes := make([]any, 0, manager.Themes().Len())
	for _, id := range manager.Themes().IDs() {
		themes = append(themes, string(id))
	}

	api := map[string]any{
		"switchingEnabled": manager.SwitchingEnabled(),
		"themes":           themes,
		"read": js.FuncOf(func(js.Value, []js.Value) any {
			r := manager.Read()
			return map[string]any{"theme": string(r.Theme), "mode": string(r.Mode)}
		}),
		"ready": js.FuncOf(func(js.Value, []js.Value) any {
			return manager.Ready()
		}),
		"setTheme": js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeString {
				return false
			}
			return manager.SetTheme(ctx, args[0].String())
		}),
		"setMode": js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeString {
				return false
			}
			mode, ok := entity.ParseMode(args[0].String())
			if !ok {
				return false
			}
			return manager.SetMode(ctx, mode)
		}),
		"toggleMode": js.FuncOf(func(js.Value, []js.Value) any {
			manager.ToggleMode(ctx)
			return nil
		}),
	}
	return js.ValueOf(api)
}
