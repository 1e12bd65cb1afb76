package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting the server needs. Values come from
// environment variables (a local .env is loaded in main) with dev defaults.
type Config struct {
	Port          string
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration
	AllowOrigins  []string
	ReleaseMode   bool
}

func Load() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.DBPath = getEnv("DB_PATH", "socialnet.db")
	cfg.ReleaseMode = os.Getenv("GIN_MODE") == "release"

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		if cfg.ReleaseMode {
			log.Fatal("SESSION_SECRET must be set in release mode")
		}
		log.Println("WARNING: SESSION_SECRET not set, using insecure dev secret")
		cfg.SessionSecret = "dev-secret-change-me"
	}

	hours, err := strconv.Atoi(getEnv("SESSION_HOURS", "24"))
	if err != nil || hours <= 0 {
		log.Printf("Invalid SESSION_HOURS, falling back to 24 (got %q)", os.Getenv("SESSION_HOURS"))
		hours = 24
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
