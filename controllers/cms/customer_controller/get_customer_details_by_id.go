package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetCustomerDetailsByID godoc
// @Summary Get customer details (CMS)
// @Description Customer profile with order, wallet and ticket rollups
// @Tags CMS - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/customers/{id} [get]
func GetCustomerDetailsByID(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).
		Preload("Addresses").
		First(&user, "id = ?", customerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var orderStats struct {
		OrderCount int
		TotalSpent float64
	}
	if err := config.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status NOT IN ('cancelled', 'refunded'))::int AS order_count,
			COALESCE(SUM(total_amount) FILTER (WHERE status NOT IN ('cancelled', 'refunded')), 0) AS total_spent
		FROM orders
		WHERE user_id = ?
	`, customerID).Scan(&orderStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	var wallet models.Wallet
	walletBalance := "0.00"
	if err := config.DB.WithContext(ctx).
		First(&wallet, "user_id = ?", customerID).Error; err == nil {
		walletBalance = wallet.Balance.StringFixed(2)
	}

	var openTickets int64
	if err := config.DB.WithContext(ctx).
		Model(&models.SupportTicket{}).
		Where("user_id = ? AND status IN ?", customerID, []string{models.TicketStatusOpen, models.TicketStatusPending}).
		Count(&openTickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ticket stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", gin.H{
		"customer":       user,
		"order_count":    orderStats.OrderCount,
		"total_spent":    orderStats.TotalSpent,
		"wallet_balance": walletBalance,
		"open_tickets":   openTickets,
	}))
}
