package database

import (
	"testing"

	"store-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedCreatesDefaults(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if admin.Role != "manager" {
		t.Errorf("admin role = %q, want manager", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Error("admin password hash does not match the default credential")
	}

	var walkIn models.Customer
	if err := db.Where("name = ?", "Walk-in Customer").First(&walkIn).Error; err != nil {
		t.Fatalf("walk-in customer missing: %v", err)
	}

	var products int64
	db.Model(&models.Product{}).Count(&products)
	if products != 5 {
		t.Errorf("seeded products = %d, want 5", products)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var users int64
	db.Model(&models.User{}).Count(&users)
	if users != 2 {
		t.Errorf("users = %d after reseed, want 2", users)
	}
}
