package database

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"store-pos/internal/models"
)

func strPtr(s string) *string { return &s }

// Seed bootstraps a fresh store file with the two default identities, the
// walk-in customer and a starter catalog. It is a no-op once any user exists,
// so restarting the terminal never duplicates rows.
func Seed(db *gorm.DB) error {
	var users int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users > 0 {
		return nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	cashierHash, err := bcrypt.GenerateFromPassword([]byte("cashier123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		seedUsers := []models.User{
			{Username: "admin", PasswordHash: string(adminHash), Role: "manager", FullName: "System Administrator", IsActive: true},
			{Username: "cashier", PasswordHash: string(cashierHash), Role: "cashier", FullName: "Sample Cashier", IsActive: true},
		}
		if err := tx.Create(&seedUsers).Error; err != nil {
			return err
		}

		// The anonymous identity used when no customer is selected.
		walkIn := models.Customer{Name: "Walk-in Customer", IsActive: true}
		if err := tx.Create(&walkIn).Error; err != nil {
			return err
		}

		seedProducts := []models.Product{
			{Barcode: strPtr("1234567890123"), Name: "Coca Cola 500ml", Description: "Soft drink", Category: "Beverages", Price: 2.50, CostPrice: 1.80, StockQuantity: 50, MinStockLevel: 5, IsActive: true},
			{Barcode: strPtr("2345678901234"), Name: "Bread Loaf", Description: "White bread", Category: "Bakery", Price: 3.00, CostPrice: 2.20, StockQuantity: 30, MinStockLevel: 5, IsActive: true},
			{Barcode: strPtr("3456789012345"), Name: "Milk 1L", Description: "Fresh milk", Category: "Dairy", Price: 4.50, CostPrice: 3.50, StockQuantity: 25, MinStockLevel: 5, IsActive: true},
			{Barcode: strPtr("4567890123456"), Name: "Bananas 1kg", Description: "Fresh bananas", Category: "Fruits", Price: 5.00, CostPrice: 3.00, StockQuantity: 40, MinStockLevel: 5, IsActive: true},
			{Barcode: strPtr("5678901234567"), Name: "Rice 2kg", Description: "Jasmine rice", Category: "Grains", Price: 8.00, CostPrice: 6.00, StockQuantity: 20, MinStockLevel: 5, IsActive: true},
		}
		if err := tx.Create(&seedProducts).Error; err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"users":    len(seedUsers),
			"products": len(seedProducts),
		}).Info("Seeded default data")
		return nil
	})
}
