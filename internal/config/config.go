// Package config resolves the sensor API's runtime settings from command
// line flags and environment variables.
//
// Resolution order: explicit flag > environment variable > default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"
)

const (
	DefaultHost            = ""
	DefaultPort            = 5000
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

var (
	ErrInvalidPort    = errors.New("port must be between 1 and 65535")
	ErrInvalidTimeout = errors.New("timeouts must be positive")
)

// Config holds the server settings.
type Config struct {
	Host            string
	Port            int
	LogLevel        string
	Development     bool
	MetricsEnabled  bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		MetricsEnabled:  true,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Addr returns the listen address, e.g. ":5000".
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// Load parses args (without the program name) and applies environment
// overrides looked up through getenv. Recognized variables: PORT, HOST,
// LOG_LEVEL.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("sensorapi", flag.ContinueOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Interface to bind (empty = all)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP listen port (env PORT)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env LOG_LEVEL)")
	fs.BoolVar(&cfg.Development, "dev", cfg.Development, "Human-readable console logs")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics on /metrics")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if getenv != nil {
		if v := getenv("PORT"); v != "" && !explicit["port"] {
			port, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("parse PORT %q: %w", v, err)
			}
			cfg.Port = port
		}
		if v := getenv("HOST"); v != "" && !explicit["host"] {
			cfg.Host = v
		}
		if v := getenv("LOG_LEVEL"); v != "" && !explicit["log-level"] {
			cfg.LogLevel = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
