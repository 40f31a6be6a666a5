package cms_routes

import (
	"github.com/gin-gonic/gin"
	admin_controller "github.com/novamart-commerce/novamart-backoffice/controllers/cms/admin_controller"
	admin_auth "github.com/novamart-commerce/novamart-backoffice/controllers/cms/admin_controller/auth"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	// Auth
	admin.POST("/login", admin_auth.AdminLogin)
	admin.POST("/accept-invite", admin_auth.AcceptAdminInvite)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Profile
		protected.PATCH("/me", admin_controller.UpdateAdminProfile)

		// Admins
		protected.GET("/admins", admin_controller.GetAdmins)
		protected.GET("/admins/:id", admin_controller.GetAdminByID)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.SearchAdminActivityLogs)
		protected.GET("/activity-logs/all", admin_controller.GetAllAdminActivityLogs)
		protected.GET("/admins/:id/activity-logs", admin_controller.GetSingleAdminActivityLogs)

		// Stats
		protected.GET("/stats", admin_controller.GetAdminStats)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		// Invitations
		superAdmin.POST("/invites", admin_auth.CreateAdminInvite)

		// Admin management
		superAdmin.POST("/admins/:id/suspend", admin_controller.SuspendAdmin)
		superAdmin.POST("/admins/:id/unsuspend", admin_controller.UnsuspendAdmin)
	}
}
