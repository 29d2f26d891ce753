package handlers

import (
	"net/http"

	"store-pos/internal/database"
	"store-pos/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List all active customers ---
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.
		Where("is_active = ?", true).
		Order("name").
		Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// --- GET: Substring search by name or phone ---
func SearchCustomers(c *gin.Context) {
	term := c.Query("q")

	var customers []models.Customer
	if err := database.DB.
		Where("(name LIKE ? OR phone LIKE ?) AND is_active = ?", "%"+term+"%", "%"+term+"%", true).
		Order("name").
		Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

type AddCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// --- POST: Add a new customer ---
func AddCustomer(c *gin.Context) {
	var input AddCustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	customer := models.Customer{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
		IsActive: true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}
