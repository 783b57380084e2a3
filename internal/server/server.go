// Package server is the http backend answering the contact form, statistics and resume
// requests of the portfolio.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Hour
)

var errServe = errors.New("http server error")

// ContactStore is the persistence the server needs for contact messages.
type ContactStore interface {
	Insert(ctx context.Context, msg contact.Message) error
	CountSince(ctx context.Context, ipAddress string, since time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, skip int, limit int) ([]contact.Message, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	SetStatus(ctx context.Context, messageID string, status contact.Status) error
}

// CountryResolver maps a client address to an ISO country code.
type CountryResolver interface {
	Country(address string) string
}

type Server struct {
	conf      config.Server
	contacts  ContactStore
	portfolio content.Portfolio
	geo       CountryResolver
	now       func() time.Time
	router    chi.Router
}

type Option func(s *Server)

func WithCountryResolver(resolver CountryResolver) Option {
	return func(s *Server) { s.geo = resolver }
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func New(conf config.Server, contacts ContactStore, portfolio content.Portfolio, opts ...Option) *Server {
	server := &Server{
		conf:      conf,
		contacts:  contacts,
		portfolio: portfolio,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(server)
	}

	server.router = server.buildRouter()

	return server
}

func (s *Server) buildRouter() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(requestTimeout))

	origins := s.conf.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(api chi.Router) {
		api.Get("/", s.onHealth)
		api.Post("/contact", s.onSubmitContact)
		api.Get("/stats", s.onStats)
		api.Get("/resume/download", s.onDownloadResume)
		api.Group(func(admin chi.Router) {
			admin.Use(requireToken(s.conf.AdminToken))
			admin.Get("/admin/contacts", s.onListContacts)
			admin.Patch("/admin/contacts/{id}", s.onSetContactStatus)
		})
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})

	return router
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler { return s.router }

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.conf.ListenAddress,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		slog.Info("Listening", slog.String("address", s.conf.ListenAddress))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- errors.Join(err, errServe)
		}

		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("Shutting down http server")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Join(err, errServe)
	}

	return nil
}

// Prune deletes messages older than the configured retention every interval until ctx is done.
// A retention of zero days disables pruning.
func (s *Server) Prune(ctx context.Context) error {
	if s.conf.PruneDays <= 0 {
		return nil
	}

	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		s.pruneOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Server) pruneOnce(ctx context.Context) {
	cutoff := s.now().AddDate(0, 0, -s.conf.PruneDays)

	deleted, err := s.contacts.DeleteBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to prune contact messages", slog.String("error", err.Error()))

		return
	}

	if deleted > 0 {
		slog.Info("Pruned contact messages", slog.Int64("count", deleted))
	}
}
