package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the website API service.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	DatabaseURL    string
	RedisURL       string
	NATSURL        string
	JWTSecret      string
	ResendAPIKey   string
	FromEmail      string
	FromName       string
	AdminEmail     string
	StatsCacheTTL  time.Duration
	FormRateLimit  int
	FormRateWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EGE Organic API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("mail.from_email", "info@egeorganic.com")
	v.SetDefault("mail.from_name", "EGE Organic")
	v.SetDefault("stats.cache_ttl", "5m")
	v.SetDefault("form.rate_limit", 10)
	v.SetDefault("form.rate_window", "1m")

	ttl, err := time.ParseDuration(v.GetString("stats.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	window, err := time.ParseDuration(v.GetString("form.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid form rate window: %w", err)
	}

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		AppPort:        v.GetString("app.port"),
		DatabaseURL:    v.GetString("database.url"),
		RedisURL:       v.GetString("redis.url"),
		NATSURL:        v.GetString("nats.url"),
		JWTSecret:      v.GetString("jwt.secret"),
		ResendAPIKey:   v.GetString("resend.api_key"),
		FromEmail:      v.GetString("mail.from_email"),
		FromName:       v.GetString("mail.from_name"),
		AdminEmail:     v.GetString("mail.admin_email"),
		StatsCacheTTL:  ttl,
		FormRateLimit:  v.GetInt("form.rate_limit"),
		FormRateWindow: window,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	// A missing provider credential is a startup failure, never a per-request error.
	if cfg.ResendAPIKey == "" {
		return Config{}, fmt.Errorf("resend api key must be provided")
	}

	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("admin notification email must be provided")
	}

	if cfg.FormRateLimit <= 0 {
		cfg.FormRateLimit = 10
	}

	return cfg, nil
}
