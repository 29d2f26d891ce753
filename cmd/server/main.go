package main

import (
	"os"
	"time"

	"store-pos/internal/database"
	"store-pos/internal/handlers"
	"store-pos/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found")
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	database.Connect()
	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	// Only opens if we explicitly allow it in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
		logrus.Warn("Registration route is OPEN. Disable this in production!")
	}

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// CASHIER & MANAGER
		api.GET("/status", handlers.GetSystemStatus)

		api.GET("/products", handlers.GetProducts)
		api.GET("/products/search", handlers.SearchProducts)
		api.GET("/products/low-stock", handlers.GetLowStockProducts)
		api.GET("/products/scan/:barcode", handlers.ScanProduct)
		api.GET("/products/:id", handlers.GetProduct)

		api.GET("/customers", handlers.GetCustomers)
		api.GET("/customers/search", handlers.SearchCustomers)
		api.POST("/customers", handlers.AddCustomer)

		api.POST("/checkout", handlers.ProcessSale)

		api.GET("/credit/debtors", handlers.GetDebtors)
		api.GET("/credit/unsettled-sales", handlers.GetUnsettledSales)
		api.GET("/credit/:customerID/balance", handlers.GetCreditBalance)
		api.GET("/credit/:customerID/history", handlers.GetCreditHistory)
		api.POST("/credit/:customerID/payments", handlers.RecordCreditPayment)

		// MANAGER ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("manager"))
		{
			admin.POST("/products", handlers.AddProduct)
			admin.PUT("/products/:id", handlers.UpdateProduct)
			admin.DELETE("/products/:id", handlers.DeactivateProduct)
			admin.POST("/products/:id/stock", handlers.AdjustStock)

			admin.GET("/reports/sales", handlers.GetSalesReport)
			admin.GET("/reports/summary", handlers.GetSalesSummary)
			admin.GET("/sales/:id", handlers.GetSaleDetail)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("Server starting")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Server failed to start")
	}
}
