package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"store-pos/internal/database"
	"store-pos/internal/ledger"
	"store-pos/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// --- GET: List all active products ---
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.
		Where("is_active = ?", true).
		Order("name").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- GET: One product by ID ---
func GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- GET: Scan a barcode at the till ---
func ScanProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	var product models.Product
	if err := database.DB.
		Where("barcode = ? AND is_active = ?", barcode, true).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- GET: Substring search by name or barcode ---
func SearchProducts(c *gin.Context) {
	term := c.Query("q")

	var products []models.Product
	if err := database.DB.
		Where("(name LIKE ? OR barcode LIKE ?) AND is_active = ?", "%"+term+"%", "%"+term+"%", true).
		Order("name").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- GET: Products at or below their minimum stock level ---
func GetLowStockProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.
		Where("stock_quantity <= min_stock_level AND is_active = ?", true).
		Order("stock_quantity").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- POST: Add a new product ---
func AddProduct(c *gin.Context) {
	var newProduct models.Product
	if err := c.ShouldBindJSON(&newProduct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	newProduct.IsActive = true

	if err := database.DB.Create(&newProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Barcode already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, newProduct)
}

// --- PUT: Update catalog fields (partial update) ---
// Stock does not move through here; stock changes go through the adjuster so
// they always leave a movement record.
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	delete(updateData, "stock_quantity")

	if err := database.DB.Model(&product).Updates(updateData).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Barcode already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// --- DELETE: Deactivate a product ---
// Sales and movements keep their foreign references, so products are only
// ever soft-deleted.
func DeactivateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	result := database.DB.Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
}

type AdjustStockRequest struct {
	NewQuantity *int   `json:"new_quantity" binding:"required"`
	Reason      string `json:"reason"`
}

// --- POST: Set a product's stock level ---
func AdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := ledger.AdjustStock(database.DB, uint(id), *req.NewQuantity, actingUserID(c), req.Reason); err != nil {
		coreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock adjusted"})
}
