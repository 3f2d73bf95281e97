package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Admin console authentication
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Label used for our side of a fixture when no club profile exists yet
	ClubShortName string `mapstructure:"CLUB_SHORT_NAME"`

	// Sponsor logo storage (any S3-compatible bucket)
	LogoStorageEndpoint        string `mapstructure:"LOGO_STORAGE_ENDPOINT"`
	LogoStorageRegion          string `mapstructure:"LOGO_STORAGE_REGION"`
	LogoStorageBucket          string `mapstructure:"LOGO_STORAGE_BUCKET"`
	LogoStorageAccessKeyID     string `mapstructure:"LOGO_STORAGE_ACCESS_KEY_ID"`
	LogoStorageSecretAccessKey string `mapstructure:"LOGO_STORAGE_SECRET_ACCESS_KEY"`
	LogoStoragePublicBaseURL   string `mapstructure:"LOGO_STORAGE_PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "bowls_club")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Auth defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("CLUB_SHORT_NAME", "Crosshands")

	// Logo storage defaults: empty bucket disables uploads
	viper.SetDefault("LOGO_STORAGE_ENDPOINT", "")
	viper.SetDefault("LOGO_STORAGE_REGION", "auto")
	viper.SetDefault("LOGO_STORAGE_BUCKET", "")
	viper.SetDefault("LOGO_STORAGE_ACCESS_KEY_ID", "")
	viper.SetDefault("LOGO_STORAGE_SECRET_ACCESS_KEY", "")
	viper.SetDefault("LOGO_STORAGE_PUBLIC_BASE_URL", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.AdminPasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogoStorageEnabled reports whether sponsor logo uploads have a bucket to go to
func (c *Config) LogoStorageEnabled() bool {
	return c.LogoStorageBucket != "" && c.LogoStorageAccessKeyID != "" && c.LogoStorageSecretAccessKey != ""
}
