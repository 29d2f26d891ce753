package ledger

import (
	"fmt"
	"time"

	"store-pos/internal/models"

	"gorm.io/gorm"
)

// Balance derives a customer's outstanding credit as the sum of loans minus
// the sum of payments. A customer with no ledger entries has a balance of
// zero; an over-paying customer goes negative.
func Balance(db *gorm.DB, customerID uint) (float64, error) {
	var balance float64
	err := db.Model(&models.CreditTransaction{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE -amount END), 0)", models.TransactionLoan).
		Scan(&balance).Error
	return balance, err
}

// RecordPayment appends a payment entry to the customer's ledger and, if the
// resulting balance is zero or below, marks every one of the customer's
// unsettled credit sales as settled - all in one transaction. The system
// tracks the aggregate balance, not which sale a payment retires, so
// settlement is all-at-once rather than oldest-first.
//
// Over-payment is accepted and simply drives the balance negative. Repeated
// payments are never deduplicated: each call is a distinct payment event.
func RecordPayment(db *gorm.DB, customerID uint, amount float64, userID uint, description string) (*models.CreditTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount %.2f", ErrConstraintViolation, amount)
	}
	if description == "" {
		description = "Credit payment"
	}

	payment := models.CreditTransaction{
		CustomerID:  customerID,
		Kind:        models.TransactionPayment,
		Amount:      amount,
		Description: description,
		UserID:      userID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := activeCustomer(tx, customerID); err != nil {
			return err
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		balance, err := Balance(tx, customerID)
		if err != nil {
			return err
		}

		if balance <= 0 {
			now := time.Now()
			return tx.Model(&models.Sale{}).
				Where("customer_id = ? AND payment_method = ? AND credit_settled = ?",
					customerID, models.PaymentCredit, false).
				Updates(map[string]any{
					"credit_settled":    true,
					"credit_settled_at": now,
				}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CustomerHistory returns the customer's credit transactions, newest first.
func CustomerHistory(db *gorm.DB, customerID uint) ([]models.CreditTransaction, error) {
	var rows []models.CreditTransaction
	err := db.Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// DebtorBalance is one row of the collections view.
type DebtorBalance struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Balance    float64 `json:"balance"`
}

// Debtors lists every active customer whose derived balance is above zero,
// largest debt first.
func Debtors(db *gorm.DB) ([]DebtorBalance, error) {
	var rows []DebtorBalance
	err := db.Table("customers").
		Select("customers.id AS customer_id, customers.name, customers.phone, "+
			"SUM(CASE WHEN credit_transactions.kind = ? THEN credit_transactions.amount ELSE -credit_transactions.amount END) AS balance",
			models.TransactionLoan).
		Joins("JOIN credit_transactions ON credit_transactions.customer_id = customers.id").
		Where("customers.is_active = ?", true).
		Group("customers.id, customers.name, customers.phone").
		Having("balance > 0").
		Order("balance DESC").
		Scan(&rows).Error
	return rows, err
}

// UnsettledSale is one outstanding credit sale with its display names.
type UnsettledSale struct {
	SaleID       uint      `json:"sale_id"`
	SaleNumber   string    `json:"sale_number"`
	TotalAmount  float64   `json:"total_amount"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
	CashierName  string    `json:"cashier_name"`
}

// UnsettledSales lists every credit sale that has not yet been settled,
// newest first.
func UnsettledSales(db *gorm.DB) ([]UnsettledSale, error) {
	var rows []UnsettledSale
	err := db.Table("sales").
		Select("sales.id AS sale_id, sales.sale_number, sales.total_amount, sales.created_at, "+
			"customers.name AS customer_name, users.full_name AS cashier_name").
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id").
		Joins("LEFT JOIN users ON users.id = sales.user_id").
		Where("sales.payment_method = ? AND sales.credit_settled = ?", models.PaymentCredit, false).
		Order("sales.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
