// Package config handles environment variable loading for the server,
// database, JWT and SMTP settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	HTTPPort    int
	CORSOrigins []string

	// password for the seeded admin account, used only on first boot
	SeedAdminPass string

	JWT  JWTConfig
	SMTP SMTPConfig
}

type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
}

// SMTPConfig mirrors the variables the mail sender needs. Incomplete
// config is detected at send time, not at boot, so the API can run
// without a mail account.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := 8080
	if s := os.Getenv("PORT"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		port = p
	}

	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if s := os.Getenv("CORS_ORIGINS"); s != "" {
		origins = strings.Split(s, ",")
	}

	seedPass := os.Getenv("SEED_ADMIN_PASS")
	if seedPass == "" {
		seedPass = "admin123"
	}

	return &Config{
		DatabaseURL:   dbURL,
		HTTPPort:      port,
		CORSOrigins:   origins,
		SeedAdminPass: seedPass,
		JWT:           LoadJWT(),
		SMTP:          LoadSMTP(),
	}, nil
}

// LoadJWT reads token settings on demand so the utils package does not
// depend on the full config having been loaded.
func LoadJWT() JWTConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "admin"
	}

	ttl := 12 * time.Hour
	if s := os.Getenv("JWT_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			ttl = d
		}
	}

	return JWTConfig{Secret: []byte(secret), TTL: ttl}
}

func LoadSMTP() SMTPConfig {
	port := 587
	if s := os.Getenv("SMTP_PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil {
			port = p
		}
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return SMTPConfig{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: from,
	}
}
