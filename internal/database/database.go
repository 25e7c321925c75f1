package database

import (
	"log"
	"time"

	"github.com/assaka/aurareach/internal/config"
	"github.com/assaka/aurareach/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

func Connect(cfg *config.Config) (*DB, error) {
	logLevel := logger.Silent
	if cfg.ServerEnv == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Register metrics plugin for Prometheus
	if err := db.Use(&MetricsPlugin{}); err != nil {
		log.Printf("Failed to register metrics plugin: %v", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	return &DB{db}, nil
}

// Migrate runs AutoMigrate for all models
func Migrate(db *DB) error {
	err := db.AutoMigrate(
		// Keyword research
		&models.Keyword{},

		// Lead CRM
		&models.Lead{},

		// Ad campaigns
		&models.Campaign{},

		// Content pipeline
		&models.Post{},
		&models.AutoSchedule{},
		&models.Destination{},
		&models.DataSource{},
		&models.Credit{},

		// Outreach
		&models.Mailbox{},
		&models.OutreachCampaign{},
		&models.LeadCampaign{},
		&models.Conversation{},
	)
	if err != nil {
		// Log but don't fail - an existing schema may carry different
		// constraint names than the ones AutoMigrate derives
		log.Printf("AutoMigrate warning (non-fatal): %v", err)
	}
	return nil
}
