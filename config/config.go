// Package config loads app config from the environment and an optional .env file using Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"APP_ENV"`

	// JWTSecret signs and verifies session tokens (HS256).
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTIssuer     string        `mapstructure:"JWT_ISSUER"`
	JWTTTL        time.Duration `mapstructure:"JWT_TTL"`
	SessionCookie string        `mapstructure:"SESSION_COOKIE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// DBConnectAttempts bounds the startup ping retries.
	DBConnectAttempts int           `mapstructure:"DB_CONNECT_ATTEMPTS"`
	StoreTimeout      time.Duration `mapstructure:"STORE_TIMEOUT"`
	// UpgradeDelay simulates the checkout; there is no real payment.
	UpgradeDelay time.Duration `mapstructure:"UPGRADE_DELAY"`

	Features Features `mapstructure:",squash"`
}

// Features are the on/off switches for optional surfaces.
type Features struct {
	LocalIdentityEnabled bool `mapstructure:"LOCAL_IDENTITY_ENABLED"`
	UpgradesEnabled      bool `mapstructure:"UPGRADES_ENABLED"`
}

const minSecretLen = 32

// Load reads .env (if present), then the environment. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "tier-events")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("SESSION_COOKIE", "tier_events_jwt")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("UPGRADE_DELAY", "2s")
	v.SetDefault("LOCAL_IDENTITY_ENABLED", true)
	v.SetDefault("UPGRADES_ENABLED", true)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and bounds.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL must be set")
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.IsProduction() && len(c.JWTSecret) < minSecretLen {
		return errors.New("config: JWT_SECRET must be at least 32 bytes in production")
	}
	if c.JWTTTL <= 0 {
		return errors.New("config: JWT_TTL must be positive")
	}
	if c.DBConnectAttempts < 1 {
		return errors.New("config: DB_CONNECT_ATTEMPTS must be at least 1")
	}
	if c.StoreTimeout <= 0 {
		return errors.New("config: STORE_TIMEOUT must be positive")
	}
	if c.UpgradeDelay < 0 {
		return errors.New("config: UPGRADE_DELAY must not be negative")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
