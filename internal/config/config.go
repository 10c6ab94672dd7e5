package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel string

	// Search
	InteractiveDepth int
	SelfPlayDepth    int
	Difficulty       string

	// Self-play harness
	SelfPlayGames   int
	SelfPlayWorkers int
	SelfPlayOutput  string

	// Recorders
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
}

var AppConfig *Config

// LoadConfig reads the environment. Callers load .env files beforehand.
func LoadConfig() *Config {
	AppConfig = &Config{
		LogLevel: strings.ToLower(GetEnv("LOG_LEVEL", "info")),

		InteractiveDepth: GetEnvAsInt("INTERACTIVE_DEPTH", 4),
		SelfPlayDepth:    GetEnvAsInt("SELFPLAY_DEPTH", 3),
		Difficulty:       GetEnv("DIFFICULTY", "hard"),

		SelfPlayGames:   GetEnvAsInt("SELFPLAY_GAMES", 1000),
		SelfPlayWorkers: GetEnvAsInt("SELFPLAY_WORKERS", 4),
		SelfPlayOutput:  GetEnv("SELFPLAY_OUTPUT", "random_vs_ai.csv"),

		DatabaseURL:          GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", "")),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisAddr:            GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		RedisDB:              GetEnvAsInt("REDIS_DB", 0),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).
			Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}
