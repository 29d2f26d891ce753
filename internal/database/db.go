package database

import (
	"os"

	"store-pos/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens (or creates) the single store file and syncs the schema.
// The engine is single-writer: one process owns this file.
func Connect() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "store_pos.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open store database")
	}

	if err := Migrate(DB); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate schema")
	}

	if err := Seed(DB); err != nil {
		logrus.WithError(err).Fatal("Failed to seed default data")
	}

	logrus.WithField("path", path).Info("Store database ready")
}

// Migrate creates or updates the seven entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.InventoryMovement{},
		&models.CreditTransaction{},
	)
}
