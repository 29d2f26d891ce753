package ledger

import (
	"fmt"
	"testing"

	"store-pos/internal/database"
	"store-pos/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "x",
		Role:         "cashier",
		FullName:     "Test " + username,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{Name: name, IsActive: true}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	barcode := fmt.Sprintf("bc-%s", name)
	product := models.Product{
		Barcode:       &barcode,
		Name:          name,
		Price:         price,
		CostPrice:     price / 2,
		StockQuantity: stock,
		MinStockLevel: 5,
		IsActive:      true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p models.Product
	if err := db.First(&p, id).Error; err != nil {
		t.Fatalf("reload product %d: %v", id, err)
	}
	return p.StockQuantity
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
