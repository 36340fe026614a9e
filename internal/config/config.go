package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	// ClientURL is both the allowed CORS origin and the base of reset links.
	ClientURL string

	JWTSecret string

	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPassword string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:      ":" + getenv("PORT", "5000"),
		DatabaseURL:   mustGetenv("DATABASE_URL"),
		ClientURL:     strings.TrimRight(mustGetenv("CLIENT_URL"), "/"),
		JWTSecret:     mustGetenv("JWT_SECRET"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      465,
		EmailUser:     mustGetenv("EMAIL_USER"),
		EmailPassword: mustGetenv("EMAIL_PASSWORD"),
	}

	if v := getenv("SMTP_PORT", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SMTPPort = n
		}
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

func mustGetenv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}
