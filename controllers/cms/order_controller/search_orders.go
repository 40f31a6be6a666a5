package order_controller

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

func parseTimeFlexible(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Try RFC3339 first
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}

	// Try date only (YYYY-MM-DD)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}

	return nil, fmt.Errorf("invalid date format (expected RFC3339 or YYYY-MM-DD): %q", s)
}

// SearchOrders godoc
// @Summary Search orders (CMS)
// @Description Search orders by customer name/email, order number, status, price range and date range with pagination
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Param q query string false "Generic search (matches order number, customer name, email)"
// @Param order_number query string false "Order number (partial match)"
// @Param customer query string false "Customer name (partial match)"
// @Param email query string false "Customer email (partial match)"
// @Param status query string false "Status (pending|processing|shipped|completed|cancelled|refunded)"
// @Param min_price query number false "Min total amount"
// @Param max_price query number false "Max total amount"
// @Param created_from query string false "Created from (RFC3339 or YYYY-MM-DD)"
// @Param created_to query string false "Created to (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.CMSOrderListRow,meta=models.Paging}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/orders/search [get]
func SearchOrders(c *gin.Context) {
	var query models.AdminOrderSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	page := query.Page
	limit := query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	var createdFrom, createdTo *time.Time
	if query.CreatedFrom != nil {
		t, err := parseTimeFlexible(*query.CreatedFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid created_from (use RFC3339 or YYYY-MM-DD)"))
			return
		}
		createdFrom = t
	}
	if query.CreatedTo != nil {
		t, err := parseTimeFlexible(*query.CreatedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid created_to (use RFC3339 or YYYY-MM-DD)"))
			return
		}
		// Date-only upper bounds are inclusive (end of day)
		if t != nil && len(strings.TrimSpace(*query.CreatedTo)) == len("2006-01-02") {
			inclusive := t.Add(24*time.Hour - time.Nanosecond)
			t = &inclusive
		}
		createdTo = t
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if q := strings.TrimSpace(query.Q); q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(o.order_number ILIKE ? OR u.name ILIKE ? OR u.email ILIKE ?)")
		whereArgs = append(whereArgs, like, like, like)
	}
	if v := strings.TrimSpace(query.OrderNumber); v != "" {
		whereConditions = append(whereConditions, "o.order_number ILIKE ?")
		whereArgs = append(whereArgs, "%"+v+"%")
	}
	if v := strings.TrimSpace(query.Customer); v != "" {
		whereConditions = append(whereConditions, "u.name ILIKE ?")
		whereArgs = append(whereArgs, "%"+v+"%")
	}
	if v := strings.TrimSpace(query.Email); v != "" {
		whereConditions = append(whereConditions, "u.email ILIKE ?")
		whereArgs = append(whereArgs, "%"+v+"%")
	}
	if v := strings.ToLower(strings.TrimSpace(query.Status)); v != "" {
		whereConditions = append(whereConditions, "o.status = ?")
		whereArgs = append(whereArgs, v)
	}
	if query.MinPrice != nil {
		whereConditions = append(whereConditions, "o.total_amount >= ?")
		whereArgs = append(whereArgs, *query.MinPrice)
	}
	if query.MaxPrice != nil {
		whereConditions = append(whereConditions, "o.total_amount <= ?")
		whereArgs = append(whereArgs, *query.MaxPrice)
	}
	if createdFrom != nil {
		whereConditions = append(whereConditions, "o.created_at >= ?")
		whereArgs = append(whereArgs, *createdFrom)
	}
	if createdTo != nil {
		whereConditions = append(whereConditions, "o.created_at <= ?")
		whereArgs = append(whereArgs, *createdTo)
	}

	whereSQL := "1=1"
	if len(whereConditions) > 0 {
		whereSQL = strings.Join(whereConditions, " AND ")
	}

	countSQL := `
		SELECT COUNT(DISTINCT o.id)
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE ` + whereSQL

	var total int64
	if err := config.DB.WithContext(ctx).Raw(countSQL, whereArgs...).Scan(&total).Error; err != nil {
		log.Printf("[admin.orders.search] ERROR count query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
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
		WHERE ` + whereSQL + `
		GROUP BY o.id, o.order_number, u.id, u.name, u.email, o.created_at, o.total_amount, o.status
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`

	dataArgs := append(whereArgs, limit, offset)

	out := make([]models.CMSOrderListRow, 0)
	if err := config.DB.WithContext(ctx).Raw(dataSQL, dataArgs...).Scan(&out).Error; err != nil {
		log.Printf("[admin.orders.search] ERROR data query failed err=%v", err)
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

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", out, meta))
}
