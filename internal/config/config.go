package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings. A zero RateLimit disables per-IP
// limiting of the greeting endpoints.
type Config struct {
	ListenAddr      string
	TrustProxy      bool
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
	DocsEnabled     bool
}

func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		TrustProxy:      false,
		RateLimit:       0,
		RateBurst:       200,
		ShutdownTimeout: 5 * time.Second,
		MetricsEnabled:  true,
		DocsEnabled:     true,
	}
}

// Load builds the config from the environment. Values from an env file
// (ENV_FILE, or .env in the working directory) fill in keys the process
// environment leaves empty.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		fileVals = map[string]string{}
	}

	get := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileVals[key]
	}

	cfg := Default()

	if listen := get("LISTEN_ADDR"); listen != "" {
		cfg.ListenAddr = listen
	}

	if cfg.TrustProxy, err = parseBool(get("TRUST_PROXY"), cfg.TrustProxy); err != nil {
		return nil, fmt.Errorf("TRUST_PROXY: %w", err)
	}

	if v := get("RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = limit
	}

	if v := get("RATE_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = burst
	}

	if v := get("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if cfg.MetricsEnabled, err = parseBool(get("METRICS_ENABLED"), cfg.MetricsEnabled); err != nil {
		return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
	}

	if cfg.DocsEnabled, err = parseBool(get("DOCS_ENABLED"), cfg.DocsEnabled); err != nil {
		return nil, fmt.Errorf("DOCS_ENABLED: %w", err)
	}

	return &cfg, nil
}

func parseBool(v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}
