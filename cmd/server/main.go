package main

import (
	"context"
	"log"
	"os"

	"team-feedback-backend/internal/api/routes"
	"team-feedback-backend/internal/config"
	"team-feedback-backend/internal/database"
	"team-feedback-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "team-feedback-backend/docs" // This is needed for swag
)

//	@title			Team Feedback Backend API
//	@version		1.0
//	@description	Backend API for managing teams, games, key moments and per-player feedback delivery.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
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

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize audio asset storage
	assets := setupAssetStore(cfg)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, assets)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupAssetStore(cfg *config.Config) storage.AssetStore {
	if cfg.AssetAccessKey == "" || cfg.AssetSecretKey == "" {
		logrus.Warn("Asset storage credentials not configured, audio assets disabled")
		return storage.Noop{}
	}

	assets, err := storage.NewS3Store(context.Background(), storage.S3Config{
		Endpoint:        cfg.AssetEndpoint,
		Region:          cfg.AssetRegion,
		AccessKeyID:     cfg.AssetAccessKey,
		SecretAccessKey: cfg.AssetSecretKey,
		BucketName:      cfg.AssetBucket,
		PublicBaseURL:   cfg.AssetPublicURL,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize asset storage:", err)
	}
	return assets
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
