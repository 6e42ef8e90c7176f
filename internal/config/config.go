package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSourceURL is the curated skills list the gallery is built from.
const DefaultSourceURL = "https://raw.githubusercontent.com/VoltAgent/awesome-openclaw-skills/main/README.md"

type Config struct {
	Port string

	// Source document
	SourceURL      string
	FetchTimeout   time.Duration
	MaxSourceBytes int64

	// Artifact shared by the fetcher and the server
	DataPath  string
	WatchData bool

	// Search pagination
	PageSize    int
	MaxPageSize int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8090"),

		SourceURL:      envOr("SKILLS_SOURCE_URL", DefaultSourceURL),
		FetchTimeout:   envDuration("FETCH_TIMEOUT", 30*time.Second),
		MaxSourceBytes: envInt64("MAX_SOURCE_BYTES", 10<<20), // 10MB

		DataPath:  envOr("SKILLS_DATA_PATH", "data/skills.json"),
		WatchData: envBool("WATCH_DATA", false),

		PageSize:    envInt("PAGE_SIZE", 24),
		MaxPageSize: envInt("MAX_PAGE_SIZE", 100),
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.MaxSourceBytes <= 0 {
		cfg.MaxSourceBytes = 10 << 20
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 24
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("SKILLS_SOURCE_URL is required")
	}
	u, err := url.Parse(c.SourceURL)
	if err != nil {
		return fmt.Errorf("SKILLS_SOURCE_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("SKILLS_SOURCE_URL must be http or https, got %q", u.Scheme)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.DataPath == "" {
		return fmt.Errorf("SKILLS_DATA_PATH is required")
	}
	if c.PageSize > c.MaxPageSize {
		return fmt.Errorf("PAGE_SIZE (%d) exceeds MAX_PAGE_SIZE (%d)", c.PageSize, c.MaxPageSize)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
