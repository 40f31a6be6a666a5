package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/product_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/search", product_controller.SearchProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := product.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Create
		protected.POST("", product_controller.CreateProduct)
		protected.POST("/cleanup-folder", product_controller.CleanupOrphanedFolder)

		// Update
		protected.PATCH("/:id", product_controller.UpdateProduct)

		// Delete
		protected.DELETE("/:id", product_controller.DeleteProduct)
	}
}
