package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	mu       sync.Mutex
	messages []tea.Msg
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, msg)
}

func (f *fakeUI) Run() error {
	return nil
}

func (f *fakeUI) received() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]tea.Msg(nil), f.messages...)
}

func testPortfolio(t *testing.T) content.Portfolio {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)

	return portfolio
}

func TestNewBackendMock(t *testing.T) {
	for _, kind := range []config.BackendKind{config.BackendMock, ""} {
		client, stats, err := newBackend(config.Config{Backend: kind}, testPortfolio(t))
		require.NoError(t, err)
		require.IsType(t, &backend.Mock{}, client)
		require.IsType(t, &backend.Mock{}, stats)
	}
}

func TestNewBackendHTTP(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())

	client, stats, err := newBackend(config.Config{
		Backend:    config.BackendHTTP,
		APIBaseURL: "http://localhost:8000",
	}, testPortfolio(t))
	require.NoError(t, err)
	require.IsType(t, &backend.Client{}, client)
	require.IsType(t, &backend.Client{}, stats)

	_, _, errURL := newBackend(config.Config{Backend: config.BackendHTTP, APIBaseURL: "ftp://localhost"}, testPortfolio(t))
	require.Error(t, errURL)
}

func TestNewBackendUnknown(t *testing.T) {
	_, _, err := newBackend(config.Config{Backend: "carrier-pigeon"}, testPortfolio(t))
	require.ErrorIs(t, err, errBackend)

	_, errApp := NewApp(config.Config{Backend: "carrier-pigeon"}, testPortfolio(t), nil)
	require.ErrorIs(t, errApp, errBackend)
}

func TestAppStartForwardsConfig(t *testing.T) {
	userInterface := &fakeUI{}
	app := &App{ui: userInterface, configUpdates: make(chan config.Config)}

	done := make(chan any)
	finished := make(chan struct{})

	go func() {
		app.Start(t.Context(), done)
		close(finished)
	}()

	updated := config.Config{ScrollLookahead: 7, NotificationTimeoutMs: 1500}
	app.configUpdates <- updated
	close(done)
	<-finished

	require.Equal(t, []tea.Msg{updated}, userInterface.received())
	require.Equal(t, updated, app.config)
}

func TestAppStartStopsOnCancel(t *testing.T) {
	app := &App{ui: &fakeUI{}, configUpdates: make(chan config.Config)}

	ctx, cancel := context.WithCancel(t.Context())
	finished := make(chan struct{})

	go func() {
		app.Start(ctx, make(chan any))
		close(finished)
	}()

	cancel()
	<-finished
}

func TestAppCheckHealth(t *testing.T) {
	t.Setenv("CACHE_DIR", t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Portfolio API is running","status":"healthy"}`))
	}))

	app, err := NewApp(config.Config{Backend: config.BackendHTTP, APIBaseURL: server.URL}, testPortfolio(t), nil)
	require.NoError(t, err)
	require.True(t, app.CheckHealth(t.Context()))

	server.Close()
	require.False(t, app.CheckHealth(t.Context()))

	mock, errMock := NewApp(config.Config{Backend: config.BackendMock}, testPortfolio(t), nil)
	require.NoError(t, errMock)
	require.True(t, mock.CheckHealth(t.Context()))
}
