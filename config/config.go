// Package config loads runtime configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"sovscan/util"
)

// Version is the tool version reported in output metadata.
const Version = "1.0.0"

// Config carries every runtime setting.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string

	ListenAddr  string
	DBPath      string
	CacheMaxAge time.Duration

	ScoreHighBelow   int
	ScoreMediumBelow int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		util.Debug("No .env file loaded: %v", err)
	}

	return Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		ListenAddr:       envOr("LISTEN_ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "sovscan.db"),
		CacheMaxAge:      time.Duration(envInt("CACHE_MAX_AGE_HOURS", 1)) * time.Hour,
		ScoreHighBelow:   envInt("SCORE_HIGH_BELOW", 50),
		ScoreMediumBelow: envInt("SCORE_MEDIUM_BELOW", 75),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		util.Warn("Invalid integer for %s (%q), using default %d", key, v, fallback)
		return fallback
	}
	return n
}
