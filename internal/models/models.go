package models

import (
	"time"
)

// PaymentMethod is how a sale was paid for. Credit ("dinau") sales start
// unsettled and are cleared later through the credit ledger.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentCredit PaymentMethod = "credit"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentCredit:
		return true
	}
	return false
}

// MovementKind classifies a stock change in the audit trail.
type MovementKind string

const (
	MovementIn         MovementKind = "in"
	MovementOut        MovementKind = "out"
	MovementAdjustment MovementKind = "adjustment"
)

// TransactionKind is the sign of a credit ledger entry: loans add to the
// customer's debt, payments subtract from it.
type TransactionKind string

const (
	TransactionLoan    TransactionKind = "loan"
	TransactionPayment TransactionKind = "payment"
)

// User - The cashiers and managers operating the terminal
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `gorm:"size:20" json:"role"` // 'cashier' or 'manager'
	FullName     string    `gorm:"size:120" json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
}

// Product - The Inventory
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Barcode       *string   `gorm:"uniqueIndex;size:64" json:"barcode"`
	Name          string    `gorm:"size:200" json:"name"`
	Description   string    `json:"description"`
	Category      string    `gorm:"size:100" json:"category"`
	Price         float64   `json:"price"`
	CostPrice     float64   `json:"cost_price"`
	StockQuantity int       `json:"stock_quantity"`
	MinStockLevel int       `gorm:"default:5" json:"min_stock_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// Customer - Known customers; the seeded "Walk-in Customer" row stands in
// for anonymous sales.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Phone     string    `gorm:"size:40" json:"phone"`
	Email     string    `gorm:"size:120" json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
}

// Sale - The Transaction Header
type Sale struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	SaleNumber      string        `gorm:"uniqueIndex;size:40" json:"sale_number"`
	UserID          uint          `json:"user_id"` // Who processed it
	CustomerID      uint          `json:"customer_id"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   PaymentMethod `gorm:"size:10" json:"payment_method"`
	CreditSettled   bool          `gorm:"default:false" json:"credit_settled"`
	CreditSettledAt *time.Time    `json:"credit_settled_at"`
	CreatedAt       time.Time     `json:"created_at"`
	Items           []SaleItem    `gorm:"foreignKey:SaleID" json:"items"`
}

// SaleItem - The specific items in a cart
type SaleItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	SaleID     uint    `gorm:"index" json:"sale_id"`
	ProductID  uint    `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"` // Snapshot of price at time of sale
	TotalPrice float64 `json:"total_price"`
}

// InventoryMovement - Append-only audit record of a single stock change.
// Quantity is the signed delta applied to the product.
type InventoryMovement struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	ProductID uint         `gorm:"index" json:"product_id"`
	Kind      MovementKind `gorm:"size:12" json:"kind"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	UserID    uint         `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreditTransaction - One entry in a customer's running credit ledger.
// Amount is always a non-negative magnitude; Kind carries the sign.
// The balance is never stored, it is always derived from these rows.
type CreditTransaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"index" json:"customer_id"`
	SaleID      *uint           `json:"sale_id"`
	Kind        TransactionKind `gorm:"size:10" json:"kind"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	UserID      uint            `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
