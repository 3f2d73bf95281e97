package auth

import (
	"fmt"
	"time"

	"bowls-club-backend/internal/config"
)

// AuthConfig holds the admin console credentials and token settings
type AuthConfig struct {
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string // bcrypt
	TokenTTL          time.Duration
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:         cfg.JWTSecret,
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		TokenTTL:          time.Hour,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("admin username is required")
	}
	return nil
}

// LoginEnabled reports whether a password hash has been configured
func (c *AuthConfig) LoginEnabled() bool {
	return c.AdminPasswordHash != ""
}
