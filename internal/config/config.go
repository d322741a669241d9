package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ListenAddr  string
	UpstreamURL string
	SiteURL     string
	DefaultLang string
	PageSize    int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		UpstreamURL: os.Getenv("UPSTREAM_URL"),
		SiteURL:     os.Getenv("SITE_URL"),
		DefaultLang: getenv("DEFAULT_LANG", "es"),
		PageSize:    getenvInt("PAGE_SIZE", 8),
	}
	if cfg.UpstreamURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("UPSTREAM_URL not set")
	}
	return cfg, nil
}
