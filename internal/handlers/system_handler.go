package handlers

import (
	"net/http"

	"store-pos/internal/database"
	"store-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// GetSystemStatus gives the shell a quick health read: store reachability
// and the counts it shows on the dashboard tiles.
func GetSystemStatus(c *gin.Context) {
	var products, lowStock, unsettled int64

	if err := database.DB.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&products).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "Store unreachable"})
		return
	}
	database.DB.Model(&models.Product{}).
		Where("stock_quantity <= min_stock_level AND is_active = ?", true).
		Count(&lowStock)
	database.DB.Model(&models.Sale{}).
		Where("payment_method = ? AND credit_settled = ?", models.PaymentCredit, false).
		Count(&unsettled)

	c.JSON(http.StatusOK, gin.H{
		"status":                 "online",
		"active_products":        products,
		"low_stock_products":     lowStock,
		"unsettled_credit_sales": unsettled,
	})
}
