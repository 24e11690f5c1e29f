package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	DatabaseURL          string // empty keeps notes in memory
	SeedNotes            bool
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string

	TimelineThreshold   int
	TimelineSplitHalves bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		SeedNotes:            getenv("SEED_NOTES", "true") == "true",
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		AdminPassword:        getenv("ADMIN_PASSWORD", ""),
		AdminPasswordHash:    getenv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:            getenv("JWT_SECRET", ""),
		TimelineSplitHalves:  getenv("TIMELINE_SPLIT_HALVES", "true") == "true",
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	threshold, err := strconv.Atoi(getenv("TIMELINE_THRESHOLD", "2"))
	if err != nil || threshold < 0 {
		return Config{}, fmt.Errorf("invalid TIMELINE_THRESHOLD: %q", os.Getenv("TIMELINE_THRESHOLD"))
	}
	cfg.TimelineThreshold = threshold

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("missing env: ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("missing env: JWT_SECRET")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
