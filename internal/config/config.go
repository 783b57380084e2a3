package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "folio"
	DefaultConfigName  = "folio"
	DefaultDBName      = "folio.db"
	DefaultLogName     = "folio.log"
	CacheDirName       = "cache"
	EnvPrefix          = "folio"
	DefaultHTTPTimeout = 10 * time.Second
)

// BackendKind selects which implementation answers contact form submissions.
type BackendKind string

const (
	BackendMock BackendKind = "mock"
	BackendHTTP BackendKind = "http"
)

type Config struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	FPS      int    `mapstructure:"fps"`
	// Backend is either "mock", which simulates latency and canned replies, or "http" which
	// talks to a running `folio serve` instance at APIBaseURL.
	Backend               BackendKind `mapstructure:"backend"`
	APIBaseURL            string      `mapstructure:"api_base_url"`
	SubmitLatencyMs       int         `mapstructure:"submit_latency_ms"`
	ResumeLatencyMs       int         `mapstructure:"resume_latency_ms"`
	ScrollLookahead       int         `mapstructure:"scroll_lookahead"`
	ScrollThreshold       int         `mapstructure:"scroll_threshold"`
	NotificationTimeoutMs int         `mapstructure:"notification_timeout_ms"`
	ContentPath           string      `mapstructure:"content_path"`
	Server                Server      `mapstructure:"server"`
}

type Server struct {
	ListenAddress     string   `mapstructure:"listen_address"`
	DatabasePath      string   `mapstructure:"database_path"`
	ResumePath        string   `mapstructure:"resume_path"`
	GeoIPPath         string   `mapstructure:"geoip_path"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	RateLimit         int      `mapstructure:"rate_limit"`
	RateWindowMinutes int      `mapstructure:"rate_window_minutes"`
	PruneDays         int      `mapstructure:"prune_days"`
	AdminToken        string   `mapstructure:"admin_token"`
}

func (c Config) SubmitLatency() time.Duration {
	return time.Duration(c.SubmitLatencyMs) * time.Millisecond
}

func (c Config) ResumeLatency() time.Duration {
	return time.Duration(c.ResumeLatencyMs) * time.Millisecond
}

func (c Config) NotificationTimeout() time.Duration {
	return time.Duration(c.NotificationTimeoutMs) * time.Millisecond
}

func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (s Server) RateWindow() time.Duration {
	return time.Duration(s.RateWindowMinutes) * time.Minute
}

// Validate checks the values that would otherwise fail much later at runtime.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMock, BackendHTTP:
	default:
		return fmt.Errorf("%w: backend must be one of: mock, http", errConfigInvalid)
	}

	if c.Backend == BackendHTTP && !strings.HasPrefix(c.APIBaseURL, "http") {
		return fmt.Errorf("%w: api_base_url must be a http(s) url", errConfigInvalid)
	}

	if c.FPS <= 0 || c.SubmitLatencyMs < 0 || c.ResumeLatencyMs < 0 || c.ScrollLookahead < 0 || c.ScrollThreshold < 0 {
		return fmt.Errorf("%w: numeric values cannot be negative", errConfigInvalid)
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})))

	return logFile, nil
}

// ConsoleLoggerInit is used by the non interactive commands that are free to write to stderr.
func ConsoleLoggerInit(out io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
}
