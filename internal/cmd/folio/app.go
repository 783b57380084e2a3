package main

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/cache"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui"
)

var errBackend = errors.New("unknown backend")

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

type healthChecker interface {
	Health(ctx context.Context) (backend.Health, error)
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	config        config.Config
	portfolio     content.Portfolio
	backend       backend.Backend
	stats         backend.StatsSource
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, portfolio content.Portfolio, configUpdates chan config.Config) (*App, error) {
	client, stats, err := newBackend(conf, portfolio)
	if err != nil {
		return nil, err
	}

	return &App{
		config:        conf,
		portfolio:     portfolio,
		backend:       client,
		stats:         stats,
		configUpdates: configUpdates,
	}, nil
}

// newBackend selects the simulated or the http backend. Both can report statistics.
func newBackend(conf config.Config, portfolio content.Portfolio) (backend.Backend, backend.StatsSource, error) {
	switch conf.Backend {
	case config.BackendHTTP:
		fsCache, errCache := cache.New(config.PathCache(config.CacheDirName))
		if errCache != nil {
			return nil, nil, errCache
		}

		client, errClient := backend.NewClient(conf.APIBaseURL,
			backend.WithCache(fsCache),
			backend.WithResumeFilename(portfolio.ResumeFilename()))
		if errClient != nil {
			return nil, nil, errClient
		}

		return client, client, nil
	case config.BackendMock, "":
		resume := backend.Resume{
			DownloadURL: portfolio.Profile.Resume,
			Filename:    portfolio.ResumeFilename(),
		}

		mock, errMock := backend.NewMock(portfolio.ContactResponses, resume,
			backend.WithLatency(conf.SubmitLatency()),
			backend.WithResumeLatency(conf.ResumeLatency()),
			backend.WithStats(portfolio.Stats(0)))
		if errMock != nil {
			return nil, nil, errMock
		}

		return mock, mock, nil
	default:
		return nil, nil, errBackend
	}
}

// CheckHealth asks a remote backend if it is reachable. A failure is only logged since the ui
// remains usable offline.
func (app *App) CheckHealth(ctx context.Context) bool {
	checker, ok := app.backend.(healthChecker)
	if !ok {
		return true
	}

	health, err := checker.Health(ctx)
	if err != nil {
		slog.Warn("Backend is unreachable", slog.String("url", app.config.APIBaseURL),
			slog.String("error", err.Error()))

		return false
	}

	slog.Info("Backend is reachable", slog.String("status", health.Status))

	return true
}

// Start runs the main event processing loop until the ui exits or ctx is cancelled.
func (app *App) Start(ctx context.Context, done <-chan any) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		case <-done:
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, configPath string) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			app.portfolio,
			app.backend,
			app.stats,
			BuildVersion,
			BuildDate,
			BuildCommit,
			configPath,
			config.PathCache(config.CacheDirName))
	}

	return app.ui
}
