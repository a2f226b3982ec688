package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type Config struct {
	BackendURL string

	SessionStore  string
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
	CookieSecure  bool

	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDatabase string
	PostgresURL   string

	SweepSchedule  string
	HealthSchedule string
	AllowOrigins   []string
}

/*
* Load the .env file if present, a missing file is not fatal
* Read every setting from the environment with its default
* Validate the session store name and durations
 */
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		BackendURL:     strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8080"), "/"),
		SessionStore:   strings.ToLower(getEnv("SESSION_STORE", StoreMemory)),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		CookieName:     getEnv("SESSION_COOKIE", "lifecare_session"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "lifecare_portal"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		SweepSchedule:  getEnv("SWEEP_SCHEDULE", "*/10 * * * *"),
		HealthSchedule: getEnv("HEALTH_SCHEDULE", "@every 1m"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
	}
	cfg.SessionTTL = ttl

	secure, err := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	cfg.CookieSecure = secure

	switch cfg.SessionStore {
	case StoreMemory, StoreRedis, StoreMongo, StorePostgres:
	default:
		return nil, fmt.Errorf("SESSION_STORE: unknown store %q", cfg.SessionStore)
	}
	if cfg.SessionStore == StorePostgres && cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required for the postgres session store")
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = randomSecret()
		log.Println("SESSION_SECRET not set, sessions will not survive a restart")
	}

	for _, origin := range strings.Split(getEnv("ALLOW_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
