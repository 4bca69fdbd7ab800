package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/api"
	"synthesistalk-backend/internal/api/routes"
	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/config"
	"synthesistalk-backend/internal/libraries"
	"synthesistalk-backend/internal/llm"
	"synthesistalk-backend/internal/repo"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	// Connect to database and run migrations
	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDB(db)

	if err := config.MigrateAllModels(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	completer, err := llm.NewGroqClient(llm.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.ChatModel,
	})
	if err != nil {
		logger.Fatal("failed to build completion client", zap.Error(err))
	}
	if cfg.GroqAPIKey == "" {
		logger.Warn("GROQ_API_KEY not set; chat endpoints will fail until configured")
	}

	// Create and configure Fiber app
	app := api.NewServer(cfg, logger)

	// Register routes
	routes.Register(app, routes.Deps{
		Users:     repo.NewUserRepository(db),
		Convs:     repo.NewConversationRepository(db),
		Tokens:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Completer: completer,
		Search:    libraries.NewSearchClient(),
		Logger:    logger,
	})

	// Start server
	if err := api.StartServer(app, cfg, logger); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
