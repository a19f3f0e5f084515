// Package config reads server configuration from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string

	// TMDBBearer is the v4 read access token. When set it wins over the
	// v3 API key.
	TMDBBearer string
	// TMDBAPIKey is the v3 API key, sent as a query parameter.
	TMDBAPIKey string
	// YouTubeKey enables the music-chart path for trending videos.
	YouTubeKey string

	// Demo serves the built-in seed fixtures instead of calling upstream.
	Demo bool
	// LogFile, when set, routes logs to a rotated file instead of stderr.
	LogFile string
}

// Load builds a Config from the environment. Missing credentials are not
// fatal here; operations that need them surface the error per request.
func Load() Config {
	return Config{
		Port:       getenv("PORT", "5000"),
		TMDBBearer: os.Getenv("TMDB_BEARER"),
		TMDBAPIKey: os.Getenv("TMDB_API_KEY"),
		YouTubeKey: os.Getenv("YT_API_KEY"),
		Demo:       parseBool(os.Getenv("CINEAI_DEMO")),
		LogFile:    os.Getenv("CINEAI_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
