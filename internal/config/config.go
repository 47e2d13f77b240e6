package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/jellydator/validation"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	LogLevel           string
	LogFormat          string
	BcryptCost         int
	ShutdownTimeout    time.Duration
	HealthPollInterval time.Duration
	CORSAllowOrigins   []string
}

const (
	defaultRunAddress         = ":3000"
	defaultLogLevel           = "info"
	defaultLogFormat          = LogFormatJSON
	defaultBcryptCost         = 10
	defaultShutdownTimeout    = 10 * time.Second
	defaultHealthPollInterval = 30 * time.Second
	defaultCORSAllowOrigins   = "*"
)

// Supported log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LogFormat:          getString(lookup, "LOG_FORMAT", defaultLogFormat),
		BcryptCost:         getInt(lookup, "BCRYPT_COST", defaultBcryptCost),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		HealthPollInterval: getDuration(lookup, "HEALTH_POLL_INTERVAL", defaultHealthPollInterval),
	}

	// DATABASE_URI_FILE wins over DATABASE_URI; the -d flag wins over both.
	if dsnFile, ok := lookup("DATABASE_URI_FILE"); ok && dsnFile != "" {
		content, err := os.ReadFile(dsnFile)
		if err != nil {
			return nil, fmt.Errorf("read database uri file: %w", err)
		}
		cfg.DatabaseURI = strings.TrimSpace(string(content))
	}

	fs := flag.NewFlagSet("banksajt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		healthIntervalStr  = cfg.HealthPollInterval.String()
		corsOrigins        = getString(lookup, "CORS_ALLOW_ORIGINS", defaultCORSAllowOrigins)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "Database DSN (postgres:// or sqlite://)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json or text")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for password hashes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&healthIntervalStr, "health-interval", healthIntervalStr, "Interval between storage health probes")
	fs.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.HealthPollInterval, err = time.ParseDuration(healthIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid health interval: %w", err)
	}

	cfg.CORSAllowOrigins = splitList(corsOrigins)
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{defaultCORSAllowOrigins}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HealthPollInterval <= 0 {
		cfg.HealthPollInterval = defaultHealthPollInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RunAddress, validation.Required),
		validation.Field(&c.DatabaseURI, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In(LogFormatJSON, LogFormatText)),
		validation.Field(&c.BcryptCost, validation.Min(4), validation.Max(31)),
	)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
