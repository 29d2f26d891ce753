package handlers

import (
	"net/http"
	"strconv"
	"time"

	"store-pos/internal/database"
	"store-pos/internal/ledger"
	"store-pos/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SaleRequest defines what the till sends us. Unit prices are the cart-time
// quotes, not re-read from the catalog.
type SaleRequest struct {
	CustomerID    uint                 `json:"customer_id"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Items         []ledger.SaleLine    `json:"items"`
}

// --- POST: Checkout ---
func ProcessSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// No customer selected means the walk-in identity.
	customerID := req.CustomerID
	if customerID == 0 {
		customerID = 1
	}

	sale, err := ledger.CreateSale(database.DB, ledger.CreateSaleInput{
		UserID:        actingUserID(c),
		CustomerID:    customerID,
		PaymentMethod: req.PaymentMethod,
		Lines:         req.Items,
	})
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Warn("Sale rejected")
		coreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sale_id":     sale.ID,
		"sale_number": sale.SaleNumber,
		"total":       sale.TotalAmount,
	})
}

// parseDate accepts YYYY-MM-DD; an empty value means no bound.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// --- GET: Sales within a date range ---
func GetSalesReport(c *gin.Context) {
	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}
	if !to.IsZero() {
		// Include the whole end day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	sales, err := ledger.SalesBetween(database.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// --- GET: One sale with its line items ---
func GetSaleDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return
	}

	sale, err := ledger.SaleDetail(database.DB, uint(id))
	if err != nil {
		coreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

// --- GET: Revenue and order count for a range ---
func GetSalesSummary(c *gin.Context) {
	from, okFrom := parseDate(c.Query("from"))
	to, okTo := parseDate(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}
	if !to.IsZero() {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := ledger.SummarizeSales(database.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize sales"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
