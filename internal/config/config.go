package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	Env   string

	JWTSecret      string
	JWTTTL         time.Duration
	JWTNeverExpire bool

	UploadDir string

	AdminUsername string
	AdminPassword string
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBUrl:         os.Getenv("DB_URL"),
		Env:           getenv("APP_ENV", "development"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin@example.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	ttl := getenv("JWT_TTL", "24h")
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
	}
	cfg.JWTTTL = parsed
	cfg.JWTNeverExpire = os.Getenv("JWT_NEVER_EXPIRE") == "true"

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			// No fallback secret lives in source. Refuse to start.
			return Config{}, errors.New("JWT_SECRET must be set in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return Config{}, fmt.Errorf("generate dev secret: %w", err)
		}
		cfg.JWTSecret = secret
		log.Println("JWT_SECRET not set, generated one for this process; tokens will not survive a restart")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
