package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetOrderDetails godoc
// @Summary Get order details
// @Description Full order with items, restricted to the order's owner
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.APIResponse{data=models.OrderWithItems}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/store/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	items := make([]models.OrderItem, 0)
	if err := config.DB.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order items"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", models.OrderWithItems{
		Order: order,
		Items: items,
	}))
}
