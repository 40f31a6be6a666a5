package order_controller

import (
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

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF (CMS)
// @Description Generate and download an invoice PDF for the order
// @Tags CMS - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 400 {object} models.APIResponse "Invalid order ID"
// @Failure 404 {object} models.APIResponse "Order not found"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[order.download-invoice] request for order: %s", orderID)

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
		log.Printf("[order.download-invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var orderItems []models.OrderItem
	if err := config.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&orderItems).Error; err != nil {
		log.Printf("[order.download-invoice] failed to fetch order items: %v", err)
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
		Scan(&customer).Error; err != nil {
		log.Printf("[order.download-invoice] failed to fetch customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer := services.GenerateOrderInvoicePDF(&order, orderItems, customer.Name, customer.Email)

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[order.download-invoice] invoice PDF downloaded for order %s", orderID)
}
