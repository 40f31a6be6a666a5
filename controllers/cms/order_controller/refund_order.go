package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RefundOrderRequest carries the mandatory refund reason
type RefundOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=3"`
}

// RefundOrder godoc
// @Summary Refund a completed order (CMS)
// @Description Refund a completed order: credits the paid amount back to the customer wallet, restores inventory and releases the coupon
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param request body RefundOrderRequest true "Refund reason"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Order not refundable"
// @Failure 404 {object} models.APIResponse "Order not found"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/orders/{id}/refund [post]
func RefundOrder(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req RefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Refund reason is required"))
		return
	}

	var adminID *uuid.UUID
	if raw, exists := c.Get("adminID"); exists {
		if id, err := uuid.Parse(raw.(string)); err == nil {
			adminID = &id
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		if !models.CanTransition(order.Status, models.OrderStatusRefunded) {
			return fmt.Errorf("cannot refund an order in status %s", order.Status)
		}

		now := time.Now()
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":      models.OrderStatusRefunded,
			"refunded_at": now,
			"admin_notes": req.Reason,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("status", models.OrderStatusRefunded).Error; err != nil {
			return err
		}

		if err := reverseOrderEffects(tx, &order, adminID, "Refund: "+req.Reason); err != nil {
			return err
		}

		if err := services.EmitEvent(tx, models.EventOrderRefunded, order.ID, map[string]interface{}{
			"order_number": order.OrderNumber,
			"amount":       order.TotalAmount,
			"reason":       req.Reason,
		}); err != nil {
			return err
		}

		title := "Order " + order.OrderNumber + " refunded"
		body := fmt.Sprintf("We refunded $%.2f to your wallet.", order.TotalAmount)
		if _, err := services.NotifyUser(tx, order.UserID, models.NotificationTypeOrder, title, body); err != nil {
			return err
		}

		order.Status = models.OrderStatusRefunded
		order.RefundedAt = &now
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		if strings.HasPrefix(err.Error(), "cannot refund") {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("❌ [admin.orders] refund failed for %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to refund order"))
		return
	}

	log.Printf("✅ [admin.orders] order %s refunded", order.OrderNumber)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order refunded successfully", order))
}
