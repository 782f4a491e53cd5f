// Package config loads and validates environment variables at startup.
// Values come from the process environment, optionally seeded from a .env
// file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Port         string
	SeedFile     string // optional YAML catalog appended to the built-in postings
	LogLevel     zerolog.Level
	RateLimitRPS float64
	CORSOrigins  []string
	GinMode      string
	SessionTTL   time.Duration
}

// Load reads .env (if present) and the environment and returns a validated
// Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", port)
	}

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		level = l
	}

	rps := 20.0
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", s)
		}
		rps = v
	}

	origins := []string{"*"}
	if s := os.Getenv("CORS_ORIGINS"); s != "" {
		origins = nil
		for _, o := range strings.Split(s, ",") {
			o = strings.TrimSpace(o)
			if o == "" {
				continue
			}
			if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
				return nil, fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", o)
			}
			origins = append(origins, o)
		}
		if len(origins) == 0 {
			return nil, fmt.Errorf("CORS_ORIGINS has no usable origin: %q", s)
		}
	}

	ttl := 30 * time.Minute
	if s := os.Getenv("SESSION_TTL"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", s)
		}
		ttl = d
	}

	mode := os.Getenv("GIN_MODE")
	switch mode {
	case "":
		mode = "release"
	case "release", "debug", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be release, debug or test, got %q", mode)
	}

	return &Config{
		Port:         port,
		SeedFile:     os.Getenv("SEED_FILE"),
		LogLevel:     level,
		RateLimitRPS: rps,
		CORSOrigins:  origins,
		GinMode:      mode,
		SessionTTL:   ttl,
	}, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}
