package db

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"soulsrpg/models"
	"soulsrpg/utils"
)

var DB *gorm.DB

// InitDB connects to Postgres and migrates the schema.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=soulsrpg password=postgres sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		utils.Log.Fatalf("failed to connect to the database: %v", err)
	}

	if err := DB.AutoMigrate(&models.Game{}); err != nil {
		utils.Log.Fatalf("failed to migrate: %v", err)
	}

	utils.Log.Info("Database connected and migrated")
}
