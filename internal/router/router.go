// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/config"
	"github.com/highgrip/storefront-backend/internal/handlers"
	"github.com/highgrip/storefront-backend/internal/middleware"
	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	paymentService := services.NewPaymentService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	orderService := services.NewOrderService(db, paymentService)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, adminService)
	productHandler := handlers.NewProductHandler(productService, adminService, storageService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, adminService)
	orderHandler := handlers.NewOrderHandler(orderService, adminService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Authentication routes
	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
	}

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)

		// Admin routes
		protected := products.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			protected.POST("", productHandler.CreateProduct)
			protected.PUT("/:id", productHandler.UpdateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
			protected.POST("/upload-image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
		}
	}

	// Category routes
	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.POST("", middleware.AuthRequired(), middleware.AdminRequired(), categoryHandler.CreateCategory)
	}

	// Order routes
	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		dashboard := admin.Group("/dashboard")
		{
			dashboard.GET("/stats", adminHandler.GetDashboardStats)
			dashboard.POST("/invalidate", adminHandler.InvalidateDashboard)
		}

		adminOrders := admin.Group("/orders")
		{
			adminOrders.GET("", orderHandler.GetOrders)
			adminOrders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
