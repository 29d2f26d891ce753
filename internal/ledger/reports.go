package ledger

import (
	"errors"
	"fmt"
	"time"

	"store-pos/internal/models"

	"gorm.io/gorm"
)

// Read-only queries for the reporting screens. Nothing here mutates the
// store, so no transaction is needed.

// SalesBetween returns sales in the range, newest first. Zero times mean no
// bound on that side.
func SalesBetween(db *gorm.DB, from, to time.Time) ([]models.Sale, error) {
	q := db.Order("created_at DESC")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}

	var sales []models.Sale
	err := q.Find(&sales).Error
	return sales, err
}

// SaleDetail loads one sale with its line items.
func SaleDetail(db *gorm.DB, saleID uint) (*models.Sale, error) {
	var sale models.Sale
	if err := db.Preload("Items").First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sale %d", ErrNotFound, saleID)
		}
		return nil, err
	}
	return &sale, nil
}

// SalesSummary aggregates a date range for the dashboard.
type SalesSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int64   `json:"total_orders"`
}

// SummarizeSales totals revenue and order count for the range.
// COALESCE keeps revenue at 0 instead of NULL when there are no sales.
func SummarizeSales(db *gorm.DB, from, to time.Time) (*SalesSummary, error) {
	rangeScope := func(q *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			q = q.Where("created_at >= ?", from)
		}
		if !to.IsZero() {
			q = q.Where("created_at <= ?", to)
		}
		return q
	}

	var summary SalesSummary
	if err := rangeScope(db.Model(&models.Sale{})).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&summary.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := rangeScope(db.Model(&models.Sale{})).
		Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
