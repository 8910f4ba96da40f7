package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	MongoURI        string
	JWTSecret       string
	TokenTTL        time.Duration
	FrontendOrigin  string

	// Feed page sizes are product policy, not architecture.
	PreviewPageSize  int
	CommentsPageSize int
	HomePageSize     int
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:         getEnv("MONGO_URI", ""),
		JWTSecret:        getEnv("JWT_SECRET", "supersecretjwtkey"),
		TokenTTL:         time.Duration(getEnvInt("JWT_TTL_HOURS", 8)) * time.Hour,
		FrontendOrigin:   getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		PreviewPageSize:  getEnvInt("FEED_PREVIEW_PAGE_SIZE", 3),
		CommentsPageSize: getEnvInt("FEED_COMMENTS_PAGE_SIZE", 2),
		HomePageSize:     getEnvInt("FEED_HOME_PAGE_SIZE", 1),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
