package customer_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetCustomerOrders godoc
// @Summary Get a customer's orders (CMS)
// @Tags CMS - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.OrderWithItems,meta=models.Paging}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/customers/{id}/orders [get]
func GetCustomerOrders(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var exists int64
	if err := config.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", customerID).
		Count(&exists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if exists == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}

	var total int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", customerID).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	orders := make([]models.Order, 0, limit)
	if err := config.DB.WithContext(ctx).
		Where("user_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	result := make([]models.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		var items []models.OrderItem
		if err := config.DB.WithContext(ctx).
			Where("order_id = ?", order.ID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order items"))
			return
		}
		result = append(result, models.OrderWithItems{Order: order, Items: items})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders fetched successfully", result, meta))
}
