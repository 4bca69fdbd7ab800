package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"synthesistalk-backend/internal/models"
)

// ConnectDB opens the PostgreSQL connection and configures the pool. The
// handle is returned rather than stored in a package variable so callers
// own the wiring.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	logMode := logger.Warn
	if cfg.IsDevelopment() {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateAllModels creates the users, conversations and chat_messages
// tables, including the cascade-delete foreign keys.
func MigrateAllModels(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.ChatMessage{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
