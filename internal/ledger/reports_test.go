package ledger

import (
	"errors"
	"testing"
	"time"

	"store-pos/internal/models"
)

func TestSalesBetweenFiltersRange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "till")
	customer := seedCustomer(t, db, "Walk-in Customer")
	product := seedProduct(t, db, "Coca Cola 500ml", 2.50, 50)

	recent, err := CreateSale(db, CreateSaleInput{
		UserID:        user.ID,
		CustomerID:    customer.ID,
		PaymentMethod: models.PaymentCash,
		Lines:         []SaleLine{{ProductID: product.ID, Quantity: 1, UnitPrice: 2.50}},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	// Backdate a second sale out of the query window.
	old, err := CreateSale(db, CreateSaleInput{
		UserID:        user.ID,
		CustomerID:    customer.ID,
		PaymentMethod: models.PaymentCash,
		Lines:         []SaleLine{{ProductID: product.ID, Quantity: 1, UnitPrice: 2.50}},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	lastWeek := time.Now().Add(-7 * 24 * time.Hour)
	if err := db.Model(&models.Sale{}).Where("id = ?", old.ID).
		Update("created_at", lastWeek).Error; err != nil {
		t.Fatalf("backdate sale: %v", err)
	}

	sales, err := SalesBetween(db, time.Now().Add(-24*time.Hour), time.Now())
	if err != nil {
		t.Fatalf("SalesBetween: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != recent.ID {
		t.Errorf("range query returned %d sales, want only the recent one", len(sales))
	}

	all, err := SalesBetween(db, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("SalesBetween all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unbounded query returned %d sales, want 2", len(all))
	}
}

func TestSaleDetailIncludesItems(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "till")
	customer := seedCustomer(t, db, "Walk-in Customer")
	cola := seedProduct(t, db, "Coca Cola 500ml", 2.50, 50)
	bread := seedProduct(t, db, "Bread Loaf", 3.00, 30)

	sale, err := CreateSale(db, CreateSaleInput{
		UserID:        user.ID,
		CustomerID:    customer.ID,
		PaymentMethod: models.PaymentCash,
		Lines: []SaleLine{
			{ProductID: cola.ID, Quantity: 2, UnitPrice: 2.50},
			{ProductID: bread.ID, Quantity: 1, UnitPrice: 3.00},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	detail, err := SaleDetail(db, sale.ID)
	if err != nil {
		t.Fatalf("SaleDetail: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Errorf("detail items = %d, want 2", len(detail.Items))
	}
	if detail.SaleNumber != sale.SaleNumber {
		t.Errorf("sale number = %q, want %q", detail.SaleNumber, sale.SaleNumber)
	}
}

func TestSaleDetailNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := SaleDetail(db, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSummarizeSalesEmptyRangeIsZero(t *testing.T) {
	db := newTestDB(t)

	summary, err := SummarizeSales(db, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("SummarizeSales: %v", err)
	}
	if summary.TotalRevenue != 0 || summary.TotalOrders != 0 {
		t.Errorf("summary = %+v, want zeros", summary)
	}
}

func TestSummarizeSalesTotals(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "till")
	customer := seedCustomer(t, db, "Walk-in Customer")
	product := seedProduct(t, db, "Milk 1L", 4.50, 25)

	for i := 0; i < 3; i++ {
		if _, err := CreateSale(db, CreateSaleInput{
			UserID:        user.ID,
			CustomerID:    customer.ID,
			PaymentMethod: models.PaymentCash,
			Lines:         []SaleLine{{ProductID: product.ID, Quantity: 2, UnitPrice: 4.50}},
		}); err != nil {
			t.Fatalf("CreateSale: %v", err)
		}
	}

	summary, err := SummarizeSales(db, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("SummarizeSales: %v", err)
	}
	if summary.TotalOrders != 3 {
		t.Errorf("orders = %d, want 3", summary.TotalOrders)
	}
	if summary.TotalRevenue != 27.00 {
		t.Errorf("revenue = %.2f, want 27.00", summary.TotalRevenue)
	}
}
