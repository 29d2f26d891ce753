package ledger

import (
	"errors"
	"fmt"

	"store-pos/internal/models"

	"gorm.io/gorm"
)

// activeProduct loads a product that exists and has not been deactivated.
func activeProduct(tx *gorm.DB, id uint) (*models.Product, error) {
	var p models.Product
	if err := tx.Where("id = ? AND is_active = ?", id, true).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

// applyStockDelta writes the product's new quantity and appends the matching
// movement record. Every stock mutation, manual or sale-driven, goes through
// here so the audit trail has exactly one shape: one movement per mutation,
// delta equal to the change applied.
func applyStockDelta(tx *gorm.DB, product *models.Product, newQty int, kind models.MovementKind, reason string, userID uint) error {
	delta := newQty - product.StockQuantity

	if err := tx.Model(product).Update("stock_quantity", newQty).Error; err != nil {
		return err
	}

	movement := models.InventoryMovement{
		ProductID: product.ID,
		Kind:      kind,
		Quantity:  delta,
		Reason:    reason,
		UserID:    userID,
	}
	return tx.Create(&movement).Error
}

// AdjustStock sets a product's stock to newQty and records one adjustment
// movement whose delta is newQty minus the previous quantity. A negative
// target fails with ErrInvalidQuantity before anything is written.
func AdjustStock(db *gorm.DB, productID uint, newQty int, userID uint, reason string) error {
	if newQty < 0 {
		return fmt.Errorf("%w: target stock %d", ErrInvalidQuantity, newQty)
	}
	if reason == "" {
		reason = "Manual adjustment"
	}

	return db.Transaction(func(tx *gorm.DB) error {
		product, err := activeProduct(tx, productID)
		if err != nil {
			return err
		}
		return applyStockDelta(tx, product, newQty, models.MovementAdjustment, reason, userID)
	})
}
