package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "folio",
		Short: "Terminal portfolio",
		Long:  `folio - A single page developer portfolio with a working contact form, in your terminal`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about folio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	serveCmd = &cobra.Command{
		Use:               "serve",
		Short:             "Run the contact api",
		Long:              "Run the http api backing the contact form, stats and resume download",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              serve,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.AddCommand(versionCmd, serveCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(BuildVersion), fang.WithCommit(BuildCommit)); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - Terminal Portfolio\n\n")    //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// loadConfig reads the user config and the portfolio content it points to.
func loadConfig(changes chan<- config.Config) (*config.Loader, config.Config, content.Portfolio, error) {
	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return nil, config.Config{}, content.Portfolio{}, errors.Join(err, errApp)
	}

	loader := config.NewLoader(cfgFile, changes)

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return nil, config.Config{}, content.Portfolio{}, errors.Join(errConfig, errApp)
	}

	portfolio, errContent := content.Load(userConfig.ContentPath)
	if errContent != nil {
		return nil, config.Config{}, content.Portfolio{}, errors.Join(errContent, errApp)
	}

	return loader, userConfig, portfolio, nil
}

// run is the main entry point of the interactive ui.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	configUpdates := make(chan config.Config)

	loader, userConfig, portfolio, errLoad := loadConfig(configUpdates)
	if errLoad != nil {
		return errLoad
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	level := userConfig.Level()
	if userConfig.Debug {
		level = slog.LevelDebug
	}

	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("backend", string(userConfig.Backend)))

	app, errApplication := NewApp(userConfig, portfolio, configUpdates)
	if errApplication != nil {
		return errors.Join(errApplication, errApp)
	}

	app.CheckHealth(cmd.Context())
	loader.Watch()

	done := make(chan any)
	userInterface := app.createUI(cmd.Context(), loader.Path())

	go func() {
		if err := userInterface.Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))
		}

		close(done)
	}()

	app.Start(cmd.Context(), done)

	return nil
}
