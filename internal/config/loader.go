package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching the default config locations. An explicit file path
// takes precedence when not empty.
func NewLoader(configFile string, changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("debug", false)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("fps", 60)
	loader.SetDefault("backend", string(BackendMock))
	loader.SetDefault("api_base_url", "http://localhost:8001/")
	loader.SetDefault("submit_latency_ms", 1500)
	loader.SetDefault("resume_latency_ms", 1000)
	loader.SetDefault("scroll_lookahead", 3)
	loader.SetDefault("scroll_threshold", 2)
	loader.SetDefault("notification_timeout_ms", 5000)
	loader.SetDefault("content_path", "")
	loader.SetDefault("server.listen_address", ":8001")
	loader.SetDefault("server.database_path", "")
	loader.SetDefault("server.resume_path", "static/resume.pdf")
	loader.SetDefault("server.geoip_path", "")
	loader.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})
	loader.SetDefault("server.rate_limit", 5)
	loader.SetDefault("server.rate_window_minutes", 60)
	loader.SetDefault("server.prune_days", 0)
	loader.SetDefault("server.admin_token", "")

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}

	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	return &loader
}

// Watch starts broadcasting changes of the config file. It must be called after a successful Read
// so viper knows which file to watch.
func (cl *Loader) Watch() {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

// Read loads the config file if one exists. A missing file is not an error, defaults are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
