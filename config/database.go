package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-wide datastore handle. It is opened once by ConnectDB,
// shared by every request, and closed only by CloseDB at shutdown.
var DB *gorm.DB

func buildDSN() string {
	host := GetEnv("DB_HOST")
	user := GetEnv("DB_USER")
	password := GetEnv("DB_PASSWORD")
	name := GetEnv("DB_NAME")
	port := GetEnvDefault("DB_PORT", "5432")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, GetEnvDefault("DB_SSLMODE", "disable"))
}

func ConnectDB() error {
	gormLogger := logger.Default.LogMode(logger.Error)
	if GetEnv("ENV") == "dev" {
		// verbose query logging in development only
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to db")
	return nil
}

// CloseDB releases the shared connection pool. Call it once, when the
// process exits; handlers must never close the pool themselves.
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting sql db on close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing db: %v", err)
	}
}
