package handlers

import (
	"net/http"
	"strconv"

	"store-pos/internal/database"
	"store-pos/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func customerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("customerID"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return 0, false
	}
	return uint(id), true
}

// --- GET: Derived credit balance; zero when there is no history ---
func GetCreditBalance(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	balance, err := ledger.Balance(database.DB, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer_id": customerID, "balance": balance})
}

// --- GET: The customer's ledger entries, newest first ---
func GetCreditHistory(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	history, err := ledger.CustomerHistory(database.DB, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

type PaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// --- POST: Record a credit payment ---
// Settlement of any newly cleared sales happens inside the same transaction
// as the payment insert.
func RecordCreditPayment(c *gin.Context) {
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	payment, err := ledger.RecordPayment(database.DB, customerID, req.Amount, actingUserID(c), req.Description)
	if err != nil {
		logrus.WithError(err).WithField("customer_id", customerID).Warn("Payment rejected")
		coreError(c, err)
		return
	}

	balance, err := ledger.Balance(database.DB, customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction_id": payment.ID,
		"balance":        balance,
	})
}

// --- GET: Every customer still owing, largest debt first ---
func GetDebtors(c *gin.Context) {
	debtors, err := ledger.Debtors(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debtors"})
		return
	}
	c.JSON(http.StatusOK, debtors)
}

// --- GET: Outstanding credit sales across all customers ---
func GetUnsettledSales(c *gin.Context) {
	sales, err := ledger.UnsettledSales(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unsettled sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}
