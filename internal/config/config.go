// Package config loads settings from the environment and an optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort            string
	DatabaseDriver     string
	DatabaseDSN        string
	DatabaseLogQueries bool // GORM logs every statement when set
	JWTSecret          string
	JWTTTL             time.Duration
	DefaultScopes      []string
	RabbitMQURL        string // empty disables event publishing
	PaymentGatewayURL  string
	LogMode            string
}

// AllScopes are the scopes the HTTP API checks.
var AllScopes = []string{
	"categories:write",
	"users:write",
	"product:write",
	"product:read",
	"opinion:write",
	"questions:write",
	"purchase:write",
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=loja port=5432 sslmode=disable")
	v.SetDefault("DATABASE_LOG_QUERIES", false)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("JWT_DEFAULT_SCOPES", strings.Join(AllScopes, " "))
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("PAYMENT_GATEWAY_URL", "https://payments.example.com/checkout")
	v.SetDefault("LOG_MODE", "development")
}

// Load reads config.yaml from the working directory when present, then the environment.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:            v.GetString("APP_PORT"),
		DatabaseDriver:     v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),
		DatabaseLogQueries: v.GetBool("DATABASE_LOG_QUERIES"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		DefaultScopes:      strings.Fields(v.GetString("JWT_DEFAULT_SCOPES")),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		PaymentGatewayURL:  v.GetString("PAYMENT_GATEWAY_URL"),
		LogMode:            v.GetString("LOG_MODE"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive, got %s", cfg.JWTTTL)
	}
	if cfg.PaymentGatewayURL == "" {
		return nil, fmt.Errorf("PAYMENT_GATEWAY_URL is required")
	}
	return cfg, nil
}
