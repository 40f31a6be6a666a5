package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	store_blog "github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/blog_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/cart_controller"
	store_category "github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/category_controller"
	store_product "github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/product_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/order_controller"
	"github.com/novamart-commerce/novamart-backoffice/controllers/ecommerce/user_controller/wallet_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetStorefrontCategories)
	}

	// Blog routes
	blog := store.Group("/blog")
	{
		blog.GET("", store_blog.GetPublishedPosts)
		blog.GET("/:slug", store_blog.GetPostBySlug)
	}

	// Cart routes (one open cart per signed-in customer)
	cart := store.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PATCH("/items/:itemId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:itemId", cart_controller.RemoveCartItem)
		cart.POST("/coupon", cart_controller.ApplyCoupon)
		cart.DELETE("/coupon", cart_controller.RemoveCoupon)
	}

	// Checkout and order history
	orders := store.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:id", order_controller.GetOrderDetails)
	}
}

// SetupWebhookRoutes registers payment provider callbacks. These are
// signature-verified in the handler, never session-authenticated.
func SetupWebhookRoutes(router *gin.RouterGroup) {
	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/midtrans", wallet_controller.MidtransWebhook)
	}
}
