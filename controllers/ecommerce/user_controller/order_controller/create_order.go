package order_controller

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"github.com/novamart-commerce/novamart-backoffice/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// generateOrderNumber builds a unique human-readable order number, e.g.
// ORD-20260827-4F2A9C. Uniqueness is still enforced by the DB index.
func generateOrderNumber() string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("ORD-%s-%s",
		time.Now().UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(suffix)))
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Converts the open cart into an order: re-prices lines, consumes stock, redeems the coupon, optionally pays from the wallet, and emits the order.placed event
// @Tags User - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest true "Payment method, address, coupon and wallet options"
// @Success 201 {object} models.APIResponse{data=object{order_id=string,order_number=string,total_amount=number}}
// @Failure 400 {object} models.APIResponse "Empty cart or coupon rules not met"
// @Failure 404 {object} models.APIResponse "Payment method or address not found"
// @Failure 409 {object} models.APIResponse "Insufficient stock"
// @Failure 422 {object} models.APIResponse "Insufficient wallet balance"
// @Router /api/v1/store/orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	paymentMethodID, err := uuid.Parse(req.PaymentMethodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payment method ID"))
		return
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cart models.Cart
	if err := config.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND status = ?", userID, models.CartStatusOpen).
		First(&cart).Error; err != nil || len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	var paymentMethod models.UserPaymentMethod
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", paymentMethodID, "active").
		First(&paymentMethod).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Payment method not found"))
		return
	}
	if paymentMethod.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Invalid payment method"))
		return
	}

	var address models.Address
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND status = ?", addressID, "active").
		First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return
	}
	if address.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Invalid address"))
		return
	}

	deviceType := utils.ParseDeviceType(c.Request.UserAgent())

	orderID := uuid.Must(uuid.NewV7())
	orderNumber := generateOrderNumber()
	var finalTotal float64

	txErr := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-price every line from the products table under row locks so
		// concurrent checkouts cannot oversell
		items := make([]models.CartItem, len(cart.Items))
		copy(items, cart.Items)

		for i := range items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", items[i].ProductID).
				First(&product).Error; err != nil {
				return fmt.Errorf("product %s no longer exists", items[i].ProductName)
			}
			if product.Status != "Active" {
				return fmt.Errorf("product %s is no longer available", product.Name)
			}

			variantName := ""
			if items[i].VariantName != nil {
				variantName = *items[i].VariantName
			}
			if err := product.Inventory.Consume(variantName, items[i].Quantity); err != nil {
				return fmt.Errorf("%w: %s", models.ErrInsufficientStock, product.Name)
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				UpdateColumn("inventory", product.Inventory).Error; err != nil {
				return fmt.Errorf("failed to update stock for %s", product.Name)
			}

			items[i].Price = product.Price
			items[i].ProductName = product.Name
		}

		// Coupon: an explicit code on the request wins over the one stored
		// on the cart
		var couponCampaignID *uuid.UUID
		var couponCode *string
		discount := 0.0

		code := ""
		if req.CouponCode != nil && *req.CouponCode != "" {
			code = *req.CouponCode
		} else if cart.CouponCode != nil {
			code = *cart.CouponCode
		}
		if code != "" {
			// Locked re-check: two checkouts racing for the last redemption
			// serialize on the campaign row
			result, err := services.GetCouponService().EvaluateCampaignLocked(tx, code, userID, items)
			if err != nil {
				return err
			}
			discount = result.Discount
			campaignID := result.Campaign.ID
			couponCampaignID = &campaignID
			couponCode = &result.Campaign.Code
		}

		totals := models.ComputeCartTotals(items, discount)
		finalTotal = totals.Total

		addressJSON, _ := json.Marshal(address.Snapshot())
		snapshot := string(addressJSON)
		last4 := paymentMethod.GetLast4()

		// Wallet covers as much of the total as the balance allows; the
		// remainder stays on the card
		walletPaid := 0.0
		if req.UseWallet {
			wallet, err := services.GetWalletService().GetOrCreateWallet(tx, userID)
			if err != nil {
				return err
			}
			total := decimal.NewFromFloat(totals.Total)
			charge := decimal.Min(wallet.Balance, total)
			if charge.IsPositive() {
				if _, err := services.GetWalletService().Debit(
					tx, userID, charge,
					"order:"+orderID.String(),
					"Payment for order "+orderNumber,
					nil,
				); err != nil {
					return err
				}
				walletPaid, _ = charge.Float64()
			}
		}

		order := models.Order{
			ID:                 orderID,
			UserID:             userID,
			OrderNumber:        orderNumber,
			PaymentMethodID:    &paymentMethodID,
			AddressID:          &addressID,
			PaymentMethodType:  &paymentMethod.Type,
			PaymentMethodLast4: &last4,
			AddressSnapshot:    &snapshot,
			CouponCampaignID:   couponCampaignID,
			CouponCode:         couponCode,
			WalletPaid:         walletPaid,
			Subtotal:           totals.Subtotal,
			Tax:                totals.Tax,
			ShippingCost:       totals.ShippingCost,
			Discount:           totals.Discount,
			TotalAmount:        totals.Total,
			Status:             models.OrderStatusPending,
			DeviceType:         deviceType,
			CustomerNotes:      req.CustomerNotes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range items {
			orderItem := models.OrderItem{
				OrderID:     orderID,
				UserID:      userID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				VariantName: item.VariantName,
				Price:       item.Price,
				Quantity:    item.Quantity,
				Subtotal:    item.Price * float64(item.Quantity),
				Status:      models.OrderStatusPending,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order items: %w", err)
			}
		}

		if couponCampaignID != nil {
			if err := services.GetCouponService().RecordRedemption(tx, *couponCampaignID, userID, orderID, discount); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("status", models.CartStatusCheckedOut).Error; err != nil {
			return fmt.Errorf("failed to close cart: %w", err)
		}

		if err := services.EmitEvent(tx, models.EventOrderPlaced, orderID, map[string]interface{}{
			"order_number": orderNumber,
			"user_id":      userID.String(),
			"total_amount": totals.Total,
			"wallet_paid":  walletPaid,
		}); err != nil {
			return err
		}

		if _, err := services.NotifyUser(tx, userID, models.NotificationTypeOrder,
			"Order placed",
			fmt.Sprintf("Your order %s has been received and is being prepared.", orderNumber),
		); err != nil {
			return err
		}

		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, models.ErrInsufficientStock):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, txErr.Error()))
		case errors.Is(txErr, services.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Insufficient wallet balance"))
		case errors.Is(txErr, services.ErrCouponNotFound),
			errors.Is(txErr, services.ErrCouponInactive),
			errors.Is(txErr, services.ErrCouponNotStarted),
			errors.Is(txErr, services.ErrCouponExpired),
			errors.Is(txErr, services.ErrCouponMinSubtotal),
			errors.Is(txErr, services.ErrCouponCategoryScope),
			errors.Is(txErr, services.ErrCouponFirstOrder),
			errors.Is(txErr, services.ErrCouponUserLimit),
			errors.Is(txErr, services.ErrCouponExhausted):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, txErr.Error()))
		default:
			log.Printf("❌ [store.orders] checkout failed for user %s: %v", userID, txErr)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, txErr.Error()))
		}
		return
	}

	log.Printf("✅ [store.orders] order %s (%s) created for user %s - device: %s",
		orderNumber, orderID, userID, deviceType)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", gin.H{
		"order_id":     orderID.String(),
		"order_number": orderNumber,
		"total_amount": finalTotal,
	}))
}
