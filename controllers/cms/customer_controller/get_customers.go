package customer_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// CustomerListRow joins order rollups into the customer list view
type CustomerListRow struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Status     string     `json:"status"`
	OrderCount int        `json:"order_count"`
	TotalSpent float64    `json:"total_spent"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Paginated customer list with order rollups, optional status filter and search
// @Tags CMS - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(active, blocked)
// @Param q query string false "Search by name or email"
// @Success 200 {object} models.APIResponse{data=[]CustomerListRow,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/customers [get]
func GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if status == "active" || status == "blocked" {
		whereConditions = append(whereConditions, "u.status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(u.name ILIKE ? OR u.email ILIKE ?)")
		whereArgs = append(whereArgs, like, like)
	}

	whereSQL := "1=1"
	if len(whereConditions) > 0 {
		whereSQL = strings.Join(whereConditions, " AND ")
	}

	countSQL := `SELECT COUNT(u.id) FROM users u WHERE ` + whereSQL

	var total int64
	if err := config.DB.Raw(countSQL, whereArgs...).Scan(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count customers"))
		return
	}

	dataSQL := `
		SELECT
			u.id::text AS id,
			u.name,
			u.email,
			u.status,
			COUNT(o.id) FILTER (WHERE o.status NOT IN ('cancelled', 'refunded'))::int AS order_count,
			COALESCE(SUM(o.total_amount) FILTER (WHERE o.status NOT IN ('cancelled', 'refunded')), 0) AS total_spent,
			u.last_seen_at,
			u.created_at
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		WHERE ` + whereSQL + `
		GROUP BY u.id, u.name, u.email, u.status, u.last_seen_at, u.created_at
		ORDER BY u.created_at DESC
		LIMIT ? OFFSET ?
	`
	dataArgs := append(whereArgs, limit, offset)

	rows := make([]CustomerListRow, 0, limit)
	if err := config.DB.Raw(dataSQL, dataArgs...).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers fetched successfully", rows, meta))
}
