package config

import (
	"os"
	"strconv"
	"time"
)

// WallpaperLimit is the number of raw search results inspected per group.
const WallpaperLimit = 5

// Config is built once in main from the environment and passed into
// constructors. Nothing reads os.Getenv after startup.
type Config struct {
	Port        string
	FrontendURL string

	MALBaseURL       string
	WallhavenBaseURL string
	WallhavenAPIKey  string

	ListTimeout   time.Duration
	SearchTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:             getEnvOrDefault("API_PORT", "8080"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		MALBaseURL:       getEnvOrDefault("MAL_BASE_URL", "https://myanimelist.net"),
		WallhavenBaseURL: getEnvOrDefault("WALLHAVEN_BASE_URL", "https://wallhaven.cc/api/v1"),
		WallhavenAPIKey:  os.Getenv("WALLHAVEN_API_KEY"),
		ListTimeout:      time.Duration(GetEnvInt("LIST_TIMEOUT_SECONDS", 15)) * time.Second,
		SearchTimeout:    time.Duration(GetEnvInt("SEARCH_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func GetEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
