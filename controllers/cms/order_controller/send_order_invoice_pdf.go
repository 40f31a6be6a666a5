package order_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// snapshotAddressLine flattens the order's JSONB address snapshot into a
// single printable line for the invoice email.
func snapshotAddressLine(snapshot *string) string {
	if snapshot == nil || *snapshot == "" {
		return ""
	}
	var addr struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	}
	if err := json.Unmarshal([]byte(*snapshot), &addr); err != nil {
		return ""
	}
	if addr.Street == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s %s %s", addr.Street, addr.City, addr.State, addr.Zip)
}

// SendOrderInvoicePDF godoc
// @Summary Email order invoice PDF (CMS)
// @Description Generate the invoice PDF and email it to the customer via Resend
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid order ID"
// @Failure 404 {object} models.APIResponse "Order not found"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/orders/{id}/send-invoice [post]
func SendOrderInvoicePDF(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[order.send-invoice] request for order: %s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[order.send-invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var orderItems []models.OrderItem
	if err := config.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&orderItems).Error; err != nil {
		log.Printf("[order.send-invoice] failed to fetch order items: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var customer struct {
		Email string
		Name  string
	}
	if err := config.DB.WithContext(ctx).
		Table("users").
		Select("email, name").
		Where("id = ?", order.UserID).
		Scan(&customer).Error; err != nil || customer.Email == "" {
		log.Printf("[order.send-invoice] failed to fetch customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer := services.GenerateOrderInvoicePDF(&order, orderItems, customer.Name, customer.Email)

	emailItems := make([]services.OrderInvoiceItem, 0, len(orderItems))
	for _, item := range orderItems {
		name := item.ProductName
		if item.VariantName != nil && *item.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", item.ProductName, *item.VariantName)
		}
		emailItems = append(emailItems, services.OrderInvoiceItem{
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	emailData := services.OrderInvoicePDFEmailData{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		OrderNumber:   order.OrderNumber,
		OrderDate:     order.CreatedAt.Format("Jan 2, 2006"),
		AddressLine:   snapshotAddressLine(order.AddressSnapshot),
		Items:         emailItems,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Tax:           order.Tax,
		Discount:      order.Discount,
		WalletPaid:    order.WalletPaid,
		TotalAmount:   order.TotalAmount,
		PDFContent:    pdfBuffer.Bytes(),
	}

	// Send in background so the request returns fast
	go func(data services.OrderInvoicePDFEmailData) {
		resend := services.NewResendClient()
		if err := resend.SendOrderInvoicePDFEmail(data); err != nil {
			log.Printf("❌ [order.send-invoice] email failed for order %s: %v", data.OrderNumber, err)
		}
	}(emailData)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice email queued", map[string]string{
		"order_number": order.OrderNumber,
		"sent_to":      customer.Email,
	}))
}
