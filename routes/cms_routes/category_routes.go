package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/category_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	category.GET("", category_controller.GetCategories)
	category.GET("/subcategories", category_controller.GetAllSubCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := category.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Create
		protected.POST("", category_controller.CreateCategory)

		// Update
		protected.PUT("/:id", category_controller.UpdateCategory)
		protected.PATCH("/:id/status", category_controller.UpdateCategoryStatus)

		// Delete
		protected.DELETE("/:id", category_controller.DeleteCategory)
	}
}
