package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Env        string
	ServerPort string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	JWTSecret string

	RedisAddr string
}

// Load reads configuration from the environment. The signing secret has no
// default: a process without JWT_SECRET must not come up.
func Load() (*Config, error) {
	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "fleet_db"),
		DBUser:     getEnv("DB_USER", "fleet_user"),
		DBPassword: getEnv("DB_PASSWORD", "fleet_pass"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),

		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
