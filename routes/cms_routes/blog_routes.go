package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/blog_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupBlogRoutes(rg *gin.RouterGroup) {
	post := rg.Group("/posts")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	post.GET("", blog_controller.GetPosts)
	post.GET("/:id", blog_controller.GetPostByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := post.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", blog_controller.CreatePost)
		protected.PATCH("/:id", blog_controller.UpdatePost)
		protected.POST("/:id/publish", blog_controller.PublishPost)
		protected.DELETE("/:id", blog_controller.DeletePost)
	}
}
