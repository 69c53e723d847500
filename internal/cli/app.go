// Package cli wires the appearance engine for the native command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/bootstrap"
	"github.com/bnema/vitrine/internal/cli/styles"
	"github.com/bnema/vitrine/internal/domain/build"
	"github.com/bnema/vitrine/internal/infrastructure/colorscheme"
	"github.com/bnema/vitrine/internal/infrastructure/config"
	"github.com/bnema/vitrine/internal/infrastructure/document"
	"github.com/bnema/vitrine/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/vitrine/internal/infrastructure/scheduler"
	"github.com/bnema/vitrine/internal/logging"
	"github.com/bnema/vitrine/internal/ui/theme"
)

// Options are the persistent flags of the CLI.
type Options struct {
	ConfigFile string
	DBPath     string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigFile    string
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	Engine   *bootstrap.Engine
	Manager  *theme.Manager
	Store    *usecase.PreferenceStore
	Document *document.Memory
	Detector *colorscheme.Resolver

	db        *sqlite.LazyDB
	scheduler *scheduler.Timer

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and wires the engine against the SQLite store.
// The engine is not initialized; call Initialize before reading the preference.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	dbFile := cfg.Database.Path
	if opts.DBPath != "" {
		dbFile = opts.DBPath
	}
	lazy := sqlite.NewLazyDB(dbFile)

	doc := document.NewMemory()
	detector := colorscheme.NewNativeResolver(colorscheme.NewConfigAdapter(cfg))
	sched := scheduler.NewTimer()

	engine := bootstrap.NewEngine(ctx, bootstrap.EngineInput{
		Themes: cfg.ThemeSet(),
		StoreKeys: usecase.StoreKeys{
			Preference:        cfg.Storage.Key,
			DeveloperOverride: cfg.Storage.DeveloperOverrideKey,
		},
		TransitionDuration: cfg.TransitionDuration(),
		KeyValueStore:      sqlite.NewKeyValueStore(ctx, lazy),
		Document:           doc,
		Scheduler:          sched,
		Detector:           detector,
		Environment:        config.NewEnvironmentSource(mgr.Viper()),
	})

	logger.Debug().Str("db_path", dbFile).Str("config_file", mgr.GetConfigFile()).Msg("cli app wired")

	return &App{
		Config:        cfg,
		ConfigFile:    mgr.GetConfigFile(),
		ConfigManager: mgr,
		Theme:         styles.NewTheme(engine.Environment.DefaultMode),
		Engine:        engine,
		Manager:       engine.Manager,
		Store:         engine.Store,
		Document:      doc,
		Detector:      detector,
		db:            lazy,
		scheduler:     sched,
		ctx:           ctx,
	}, nil
}

// Initialize resolves and applies the startup preference, then restyles
// CLI output to match its mode.
func (a *App) Initialize() {
	a.Manager.Initialize(a.ctx)
	a.Theme = styles.NewTheme(a.Manager.Read().Mode)
}

// Close flushes pending persistence and releases all resources.
func (a *App) Close() error {
	a.Manager.Flush(a.ctx)
	a.Engine.Close()
	a.scheduler.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
