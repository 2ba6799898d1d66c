package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
)

type Config struct {
	Port          string
	LogLevel      string
	StorageDriver string
	SQLitePath    string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          GetString("PORT", "8090"),
		LogLevel:      GetString("LOG_LEVEL", "info"),
		StorageDriver: strings.ToLower(GetString("STORAGE_DRIVER", DriverMemory)),
		SQLitePath:    GetString("SQLITE_PATH", "allergygenie.db"),
		DatabaseURL:   GetString("DATABASE_URL", ""),
		MongoURI:      GetString("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: GetString("MONGO_DATABASE", "allergygenie"),
		RedisAddr:     GetString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetString("REDIS_PASSWORD", ""),
		RedisDB:       GetInt("REDIS_DB", 0),
	}
}

// GetString retrieves an environment variable or returns a fallback when unset or empty.
func GetString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt retrieves an environment variable as integer or returns fallback.
func GetInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return n
	}
	return fallback
}
