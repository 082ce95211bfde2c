package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Env  string
	Port string

	DatabaseDriver string
	DatabaseDSN    string

	BcryptCost int

	GeminiAPIKey    string
	GeminiModel     string
	GeminiMaxTokens int

	YouTubeAPIKey  string
	SearchAPIKey   string
	SearchEngineID string
	SearchBaseURL  string

	RedisURL       string
	CourseCacheTTL time.Duration

	AllowedOrigins []string
}

// Load reads the process environment, after merging a local .env file when one exists.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Debug(".env file not found, using process environment")
	}

	return &Settings{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),

		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiMaxTokens: getEnvInt("GEMINI_MAX_TOKENS", 8192),

		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		SearchAPIKey:   getEnv("SEARCH_API_KEY", ""),
		SearchEngineID: getEnv("SEARCH_ENGINE_ID", ""),
		SearchBaseURL:  getEnv("SEARCH_BASE_URL", "https://www.googleapis.com"),

		RedisURL:       getEnv("REDIS_URL", ""),
		CourseCacheTTL: getEnvDuration("COURSE_CACHE_TTL", 10*time.Minute),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func (s *Settings) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid integer for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return i
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid duration for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
