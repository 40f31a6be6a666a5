package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Retrieve all orders with customer details and pagination. Supports optional filtering by status and search.
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by order status (pending, processing, shipped, completed, cancelled, refunded)"
// @Param q query string false "Search by order number, customer email, or customer name"
// @Success 200 {object} models.APIResponse{data=[]models.CMSOrderListRow,meta=models.Paging}
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Failure 500 {object} models.APIResponse "Internal server error"
// @Router /api/v1/admin/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.orders] params page=%d limit=%d offset=%d status=%q q=%q", page, limit, offset, status, q)

	db := config.DB.Table("orders o").
		Joins("LEFT JOIN users u ON u.id = o.user_id")

	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("o.order_number ILIKE ? OR u.email ILIKE ? OR u.name ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	dataSQL := `
		SELECT
			o.id::text AS id,
			o.order_number,
			u.id::text AS customer_id,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			o.created_at,
			COUNT(oi.id)::int AS item_count,
			COALESCE(SUM(oi.quantity), 0)::int AS total_quantity,
			o.total_amount,
			o.status
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
	`

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if status != "" {
		whereConditions = append(whereConditions, "o.status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(o.order_number ILIKE ? OR u.email ILIKE ? OR u.name ILIKE ?)")
		whereArgs = append(whereArgs, like, like, like)
	}

	if len(whereConditions) > 0 {
		dataSQL += " WHERE " + strings.Join(whereConditions, " AND ")
	}

	dataSQL += `
		GROUP BY o.id, o.order_number, u.id, u.name, u.email, o.created_at, o.total_amount, o.status
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`

	whereArgs = append(whereArgs, limit, offset)

	result := make([]models.CMSOrderListRow, 0, limit)
	if err := config.DB.Raw(dataSQL, whereArgs...).Scan(&result).Error; err != nil {
		log.Printf("[admin.orders] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", result, meta))
}
