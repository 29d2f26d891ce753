// Package ledger is the transactional core of the terminal: it records
// sales, applies stock deltas with their audit trail, and keeps the
// per-customer credit ledger consistent. Every public operation runs as one
// atomic transaction against the store; a failure rolls back every write of
// that call. The package never retries - a failed attempt is reported to the
// caller, who may issue a fresh one.
package ledger

import "errors"

var (
	// ErrNotFound - referenced product, customer or sale is absent or inactive.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidQuantity - negative target stock or non-positive line quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInsufficientStock - requested quantity exceeds what is on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart - sale attempted with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrDuplicateKey - unique constraint hit (barcode, sale number, username).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrConstraintViolation - value outside its allowed set, e.g. an unknown
	// payment method or a non-positive payment amount.
	ErrConstraintViolation = errors.New("constraint violation")
)
