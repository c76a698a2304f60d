package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration shared by the three services. Each
// binary reads only the fields it needs.
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	GameServiceBase string
	UserServiceBase string

	CacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "leagueops"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:        getEnv("PORT", "8000"),
		GameServiceBase: getEnv("GAME_SERVICE_BASE", "http://game-service:8000"),
		UserServiceBase: getEnv("USER_SERVICE_BASE", "http://user-service:8000"),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
