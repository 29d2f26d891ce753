package ledger

import (
	"errors"
	"fmt"
	"time"

	"store-pos/internal/models"

	"gorm.io/gorm"
)

// SaleLine is one cart entry. UnitPrice is the price quoted at cart time -
// it is stored as-is, so a concurrent catalog price change never alters an
// in-flight cart or a historical sale.
type SaleLine struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateSaleInput carries everything the recorder needs; the acting user is
// explicit, the core keeps no session state.
type CreateSaleInput struct {
	UserID        uint
	CustomerID    uint
	PaymentMethod models.PaymentMethod
	Lines         []SaleLine
}

// newSaleNumber derives a human-readable sale number from the wall clock,
// down to the microsecond. The unique index on sale_number turns a collision
// into ErrDuplicateKey instead of a silent overwrite.
func newSaleNumber(now time.Time) string {
	return fmt.Sprintf("SALE%s%06d", now.Format("20060102150405"), now.Nanosecond()/1000)
}

func activeCustomer(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&models.Customer{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: customer %d", ErrNotFound, id)
	}
	return nil
}

// CreateSale records a sale as one atomic unit: the sale header, its line
// items, the per-line stock decrements with their movement records, and (for
// credit sales) the loan entry on the customer's ledger. Any failure rolls
// the whole unit back - a partial sale is never observable.
//
// The stock check runs inside the same transaction as the decrement, so two
// simultaneous sales of the last unit cannot both succeed; SQLite serializes
// writing transactions for us.
func CreateSale(db *gorm.DB, in CreateSaleInput) (*models.Sale, error) {
	if len(in.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: payment method %q", ErrConstraintViolation, in.PaymentMethod)
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for product %d", ErrInvalidQuantity, line.Quantity, line.ProductID)
		}
	}

	// Total is computed once from the quoted lines and stored; it is never
	// recomputed later.
	var total float64
	for _, line := range in.Lines {
		total += float64(line.Quantity) * line.UnitPrice
	}

	sale := models.Sale{
		SaleNumber:    newSaleNumber(time.Now()),
		UserID:        in.UserID,
		CustomerID:    in.CustomerID,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		// Cash and card sales are settled the moment they are made; credit
		// sales stay open until the ledger clears them.
		CreditSettled: in.PaymentMethod != models.PaymentCredit,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := activeCustomer(tx, in.CustomerID); err != nil {
			return err
		}

		if err := tx.Create(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: sale number %s", ErrDuplicateKey, sale.SaleNumber)
			}
			return err
		}

		for _, line := range in.Lines {
			product, err := activeProduct(tx, line.ProductID)
			if err != nil {
				return err
			}
			if product.StockQuantity < line.Quantity {
				return fmt.Errorf("%w: %s has %d, requested %d",
					ErrInsufficientStock, product.Name, product.StockQuantity, line.Quantity)
			}

			item := models.SaleItem{
				SaleID:     sale.ID,
				ProductID:  product.ID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: float64(line.Quantity) * line.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			if err := applyStockDelta(tx, product, product.StockQuantity-line.Quantity,
				models.MovementOut, "Sale "+sale.SaleNumber, in.UserID); err != nil {
				return err
			}
		}

		if in.PaymentMethod == models.PaymentCredit {
			loan := models.CreditTransaction{
				CustomerID:  in.CustomerID,
				SaleID:      &sale.ID,
				Kind:        models.TransactionLoan,
				Amount:      sale.TotalAmount,
				Description: "Goods on loan - Sale " + sale.SaleNumber,
				UserID:      in.UserID,
			}
			if err := tx.Create(&loan).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}
