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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reverseOrderEffects undoes the side effects of a placed order: restores
// pack inventory, releases the coupon redemption and credits the paid
// amount back to the customer wallet. Wallet credit is idempotent by
// reference, so running this twice for the same order is safe.
func reverseOrderEffects(tx *gorm.DB, order *models.Order, adminID *uuid.UUID, reason string) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return fmt.Errorf("load order items: %w", err)
	}

	for _, item := range items {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", item.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				// Product removed since the order was placed; nothing to restock
				continue
			}
			return fmt.Errorf("lock product %s: %w", item.ProductID, err)
		}

		variantName := ""
		if item.VariantName != nil {
			variantName = *item.VariantName
		}
		if err := product.Inventory.Restore(variantName, item.Quantity); err != nil {
			log.Printf("⚠️ [admin.orders] could not restock %s (%s): %v", item.ProductName, variantName, err)
			continue
		}
		if err := tx.Model(&product).Update("inventory", product.Inventory).Error; err != nil {
			return fmt.Errorf("restock product %s: %w", item.ProductID, err)
		}
	}

	if order.CouponCampaignID != nil {
		if err := services.GetCouponService().ReleaseRedemption(tx, order.ID); err != nil {
			return fmt.Errorf("release coupon redemption: %w", err)
		}
	}

	if order.TotalAmount > 0 {
		amount := decimal.NewFromFloat(order.TotalAmount)
		reference := "refund:" + order.ID.String()
		if _, err := services.GetWalletService().Credit(tx, order.UserID, amount, reference, reason, adminID); err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
	}

	return nil
}

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Move an order through its lifecycle. Cancelling or refunding requires admin notes and reverses inventory, coupon and wallet effects.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid transition"
// @Failure 404 {object} models.APIResponse "Order not found"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	newStatus := strings.ToLower(req.Status)
	if (newStatus == models.OrderStatusCancelled || newStatus == models.OrderStatusRefunded) &&
		(req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin notes are required when cancelling or refunding"))
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

		if order.Status == newStatus {
			return fmt.Errorf("order is already %s", newStatus)
		}
		if !models.CanTransition(order.Status, newStatus) {
			return fmt.Errorf("cannot move order from %s to %s", order.Status, newStatus)
		}

		previousStatus := order.Status
		now := time.Now()
		updates := map[string]interface{}{"status": newStatus}

		switch newStatus {
		case models.OrderStatusShipped:
			updates["shipped_at"] = now
		case models.OrderStatusCompleted:
			updates["delivered_at"] = now
		case models.OrderStatusRefunded:
			updates["refunded_at"] = now
		}
		if req.AdminNotes != nil {
			updates["admin_notes"] = *req.AdminNotes
		}

		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		// Item rows mirror the order status
		if err := tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus == models.OrderStatusCancelled || newStatus == models.OrderStatusRefunded {
			reason := "Order " + order.OrderNumber + " " + newStatus
			if err := reverseOrderEffects(tx, &order, adminID, reason); err != nil {
				return err
			}
		}

		eventType := models.EventOrderStatusChanged
		if newStatus == models.OrderStatusRefunded {
			eventType = models.EventOrderRefunded
		}
		if err := services.EmitEvent(tx, eventType, order.ID, map[string]interface{}{
			"order_number": order.OrderNumber,
			"from":         previousStatus,
			"to":           newStatus,
		}); err != nil {
			return err
		}

		title := "Order " + order.OrderNumber + " update"
		body := "Your order is now " + newStatus + "."
		if _, err := services.NotifyUser(tx, order.UserID, models.NotificationTypeOrder, title, body); err != nil {
			return err
		}

		order.Status = newStatus
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		if strings.HasPrefix(err.Error(), "cannot move order") || strings.HasPrefix(err.Error(), "order is already") {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("❌ [admin.orders] status update failed for %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}

	log.Printf("✅ [admin.orders] order %s moved to %s", order.OrderNumber, order.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
