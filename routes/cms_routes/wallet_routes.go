package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/controllers/cms/wallet_controller"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
)

func SetupWalletRoutes(rg *gin.RouterGroup) {
	wallet := rg.Group("/wallets")

	// Balances are admin-only, even for reads
	wallet.Use(middleware.AdminAuthMiddleware())
	{
		wallet.GET("", wallet_controller.GetWallets)
	}
}
