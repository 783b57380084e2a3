package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/geoip"
	"github.com/leighmacdonald/folio/internal/server"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// serve runs the http api until interrupted.
func serve(cmd *cobra.Command, _ []string) error {
	_, userConfig, portfolio, errLoad := loadConfig(nil)
	if errLoad != nil {
		return errLoad
	}

	config.ConsoleLoggerInit(os.Stderr, userConfig.Level())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath := userConfig.Server.DatabasePath
	if dbPath == "" {
		dbPath = config.Path(config.DefaultDBName)
	}

	// Setup the sqlite database system.
	database, errDB := store.Open(ctx, dbPath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	var opts []server.Option

	geo, errGeo := geoip.Open(userConfig.Server.GeoIPPath)
	if errGeo != nil {
		return errors.Join(errGeo, errApp)
	}

	if geo != nil {
		defer func() {
			if err := geo.Close(); err != nil {
				slog.Error("Error closing geoip database", slog.String("error", err.Error()))
			}
		}()

		opts = append(opts, server.WithCountryResolver(geo))
	}

	slog.Info("Starting folio api", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("database", dbPath))

	httpServer := server.New(userConfig.Server, store.NewContacts(database), portfolio, opts...)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return httpServer.ListenAndServe(groupCtx) })
	group.Go(func() error { return httpServer.Prune(groupCtx) })

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Join(err, errApp)
	}

	return nil
}
