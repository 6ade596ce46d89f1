package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when configs/config.yml is absent or leaves a key unset.
const (
	DefaultPort         = "8000"
	DefaultDBPath       = "data.sqlite"
	DefaultMaxOpenConns = 4
	DefaultBusyTimeout  = 5 * time.Second
	DefaultOpTimeout    = 5 * time.Second
	DefaultLogLevel     = "info"
	DefaultWSInterval   = 1 * time.Second
)

// Config is the runtime configuration of the service.
type Config struct {
	Port     string
	LogLevel string
	DB       DB
	WS       WS
}

// DB groups the storage settings.
type DB struct {
	Path         string
	MaxOpenConns int
	BusyTimeout  time.Duration
	OpTimeout    time.Duration
}

// WS groups the live list stream settings.
type WS struct {
	Interval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("db.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("db.busy_timeout", DefaultBusyTimeout)
	v.SetDefault("db.op_timeout", DefaultOpTimeout)
	v.SetDefault("ws.interval", DefaultWSInterval)
}

// Load reads config.yml from the given directories. A missing file is not an
// error: every key has a default. A file that exists but cannot be parsed is.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DB: DB{
			Path:         v.GetString("db.path"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			BusyTimeout:  v.GetDuration("db.busy_timeout"),
			OpTimeout:    v.GetDuration("db.op_timeout"),
		},
		WS: WS{
			Interval: v.GetDuration("ws.interval"),
		},
	}

	if cfg.DB.Path == "" {
		cfg.DB.Path = DefaultDBPath
	}
	if cfg.DB.MaxOpenConns <= 0 {
		return Config{}, fmt.Errorf("db.max_open_conns must be positive, got %d", cfg.DB.MaxOpenConns)
	}
	if cfg.DB.OpTimeout < 0 || cfg.DB.BusyTimeout < 0 {
		return Config{}, errors.New("db timeouts must not be negative")
	}
	if cfg.WS.Interval <= 0 {
		cfg.WS.Interval = DefaultWSInterval
	}
	return cfg, nil
}
