package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Map driver unique-violation errors onto gorm.ErrDuplicatedKey so
		// repositories can surface conflicts without driver imports.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}
