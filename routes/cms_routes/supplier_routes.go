package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/supplier_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupSupplierRoutes(rg *gin.RouterGroup) {
	supplier := rg.Group("/suppliers")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	supplier.GET("", supplier_controller.GetSuppliers)
	supplier.GET("/:id", supplier_controller.GetSupplierByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := supplier.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", supplier_controller.CreateSupplier)
		protected.PATCH("/:id", supplier_controller.UpdateSupplier)
		protected.DELETE("/:id", supplier_controller.DeleteSupplier)
	}
}
