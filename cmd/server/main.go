package main

import (
	"context"
	"log"

	"bowls-club-backend/internal/api/routes"
	"bowls-club-backend/internal/config"
	"bowls-club-backend/internal/database"
	"bowls-club-backend/internal/logger"
	"bowls-club-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "bowls-club-backend/docs" // This is needed for swag
)

//	@title			Bowls Club API
//	@version		1.0
//	@description	Admin API for the bowls club website: club profile, competitions, opposition teams, members and payments, matches, rinks and sponsors.

//	@contact.name	Club Secretary
//	@contact.email	secretary@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	var uploader storage.FileUploader
	if cfg.LogoStorageEnabled() {
		uploader, err = storage.NewS3Uploader(context.Background(), storage.S3UploaderConfig{
			Endpoint:        cfg.LogoStorageEndpoint,
			Region:          cfg.LogoStorageRegion,
			AccessKeyID:     cfg.LogoStorageAccessKeyID,
			SecretAccessKey: cfg.LogoStorageSecretAccessKey,
			BucketName:      cfg.LogoStorageBucket,
			PublicBaseURL:   cfg.LogoStoragePublicBaseURL,
		})
		if err != nil {
			logrus.Fatal("Failed to initialize logo storage:", err)
		}
	} else {
		logrus.Warn("Logo storage is not configured; sponsor logo uploads are disabled")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, uploader)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
