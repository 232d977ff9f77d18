package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint        = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultIntervalSeconds = 600
	DefaultLookbackSeconds = 7 * 24 * 60 * 60
)

// Config represents the overall application configuration.
type Config struct {
	Credentials Credentials    `yaml:"credentials"`
	Poller      PollerConfig   `yaml:"poller"`
	Telegram    TelegramConfig `yaml:"telegram"`
	Log         LogConfig      `yaml:"log"`
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
}

// Credentials holds the three values the bot cannot run without.
type Credentials struct {
	PracticumToken string `yaml:"practicum_token" env:"PRACTICUM_TOKEN"`
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_TOKEN"`
	TelegramChatID string `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

// PollerConfig holds the homework API polling configuration.
type PollerConfig struct {
	Endpoint        string        `yaml:"endpoint" env:"PRACTICUM_ENDPOINT"`
	IntervalSeconds int           `yaml:"interval_seconds" env:"POLL_INTERVAL_SECONDS"`
	Interval        time.Duration `yaml:"-"`
	LookbackSeconds int           `yaml:"lookback_seconds" env:"POLL_LOOKBACK_SECONDS"`
	StartFromNow    bool          `yaml:"start_from_now" env:"POLL_START_FROM_NOW"`
	Lookback        time.Duration `yaml:"-"`
	TimeoutSeconds  int           `yaml:"timeout_seconds" env:"POLL_TIMEOUT_SECONDS"`
	Timeout         time.Duration `yaml:"-"`
	HTTPProxy       string        `yaml:"http_proxy" env:"POLL_HTTP_PROXY"`
}

// TelegramConfig holds the bot client settings.
type TelegramConfig struct {
	APIURL         string  `yaml:"api_url" env:"TELEGRAM_API_URL"`
	TimeoutSeconds int     `yaml:"timeout_seconds" env:"TELEGRAM_TIMEOUT_SECONDS"`
	RatePerSec     float64 `yaml:"rate_per_sec" env:"TELEGRAM_RATE_PER_SEC"`
}

// LogConfig controls the console and file sinks.
type LogConfig struct {
	Level   string `yaml:"level" env:"LOG_LEVEL"`
	File    string `yaml:"file" env:"LOG_FILE"`
	NoColor bool   `yaml:"no_color" env:"LOG_NO_COLOR"`
}

// ServerConfig holds the status API configuration.
type ServerConfig struct {
	Enabled         bool    `yaml:"enabled" env:"SERVER_ENABLED"`
	Port            int     `yaml:"port" env:"SERVER_PORT"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" env:"SERVER_RATE_LIMIT_PER_SEC"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" env:"SERVER_RATE_LIMIT_BURST"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds" env:"SERVER_CACHE_TTL_SECONDS"`
}

// DatabaseConfig holds the journal database configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver" env:"DB_DRIVER"`
	DSN                    string `yaml:"dsn" env:"DB_DSN"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// Load reads the configuration from the given path and overlays the process
// environment. A missing file is not an error: the bot is usually configured
// through the environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
				return nil, fmt.Errorf("decode %s: %w", path, err)
			}
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Poller.Endpoint == "" {
		cfg.Poller.Endpoint = DefaultEndpoint
	}
	if cfg.Poller.IntervalSeconds <= 0 {
		cfg.Poller.IntervalSeconds = DefaultIntervalSeconds
	}
	cfg.Poller.Interval = time.Duration(cfg.Poller.IntervalSeconds) * time.Second

	if cfg.Poller.LookbackSeconds <= 0 {
		cfg.Poller.LookbackSeconds = DefaultLookbackSeconds
	}
	cfg.Poller.Lookback = time.Duration(cfg.Poller.LookbackSeconds) * time.Second
	if cfg.Poller.StartFromNow {
		cfg.Poller.Lookback = 0
	}

	if cfg.Poller.TimeoutSeconds <= 0 {
		cfg.Poller.TimeoutSeconds = 30
	}
	cfg.Poller.Timeout = time.Duration(cfg.Poller.TimeoutSeconds) * time.Second

	if cfg.Telegram.TimeoutSeconds <= 0 {
		cfg.Telegram.TimeoutSeconds = 10
	}
	if cfg.Telegram.RatePerSec <= 0 {
		cfg.Telegram.RatePerSec = 1
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "main.log"
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 5
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "file::memory:?cache=shared"
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 4
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 2
	}
}
