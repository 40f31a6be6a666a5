package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetOrderDetailsByID godoc
// @Summary Get order details (CMS)
// @Description Retrieve full order details including customer, payment snapshot and items
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.APIResponse{data=models.CMSOrderDetailsResponse}
// @Failure 400 {object} models.APIResponse "Invalid order ID"
// @Failure 404 {object} models.APIResponse "Order not found"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/orders/{id} [get]
func GetOrderDetailsByID(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	detailSQL := `
		SELECT
			o.id::text AS id,
			o.order_number,
			o.status,
			o.created_at,
			u.id::text AS customer_id,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			o.payment_method_type,
			o.payment_method_last4,
			o.coupon_code,
			o.wallet_paid,
			o.subtotal,
			o.shipping_cost,
			o.tax,
			o.discount,
			o.total_amount,
			o.customer_notes,
			o.admin_notes,
			o.address_snapshot
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`

	var details models.CMSOrderDetailsResponse
	result := config.DB.WithContext(ctx).Raw(detailSQL, orderID).Scan(&details)
	if result.Error != nil {
		log.Printf("[admin.orders.details] ERROR query failed err=%v", result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	items := make([]models.OrderItem, 0)
	if err := config.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[admin.orders.details] ERROR items query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order items"))
		return
	}
	details.Items = items

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", details))
}
