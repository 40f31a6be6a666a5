package profile_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

type profileSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   *string   `json:"avatar,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

type recentOrderSummary struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type userOverview struct {
	Profile             profileSummary       `json:"profile"`
	TotalOrders         int                  `json:"total_orders"`
	CompletedOrders     int                  `json:"completed_orders"`
	TotalSpent          float64              `json:"total_spent"`
	WalletBalance       string               `json:"wallet_balance"`
	UnreadNotifications int64                `json:"unread_notifications"`
	RecentOrders        []recentOrderSummary `json:"recent_orders"`
}

// GetUserOverview godoc
// @Summary Get account overview
// @Description Profile plus order totals, wallet balance, unread notification count and the three most recent orders
// @Tags User - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/user/overview [get]
func GetUserOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	overview := userOverview{
		Profile: profileSummary{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Avatar:   user.Avatar,
			Phone:    user.Phone,
			JoinedAt: user.CreatedAt,
		},
		WalletBalance: "0.00",
	}

	var stats struct {
		TotalOrders     int
		CompletedOrders int
		TotalSpent      float64
	}
	if err := config.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)::int AS total_orders,
			COUNT(*) FILTER (WHERE status = 'completed')::int AS completed_orders,
			COALESCE(SUM(total_amount) FILTER (WHERE status NOT IN ('cancelled', 'refunded')), 0)::float8 AS total_spent
		FROM orders
		WHERE user_id = ?
	`, userID).Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	overview.TotalOrders = stats.TotalOrders
	overview.CompletedOrders = stats.CompletedOrders
	overview.TotalSpent = stats.TotalSpent

	var wallet models.Wallet
	err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err == nil {
		overview.WalletBalance = wallet.Balance.StringFixed(2)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wallet"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&overview.UnreadNotifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count notifications"))
		return
	}

	overview.RecentOrders = make([]recentOrderSummary, 0, 3)
	if err := config.DB.WithContext(ctx).
		Table("orders").
		Select("id, order_number, total_amount, status, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(3).
		Scan(&overview.RecentOrders).Error; err != nil {
		overview.RecentOrders = []recentOrderSummary{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User overview retrieved successfully", overview))
}
