package ticket_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetTickets godoc
// @Summary Get support tickets (CMS)
// @Description Paginated ticket list with customer identity, optional status filter and search
// @Tags CMS - Tickets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status (open, pending, resolved, closed)"
// @Param q query string false "Search by ticket number, subject or customer"
// @Success 200 {object} models.APIResponse{data=[]models.CMSTicketListRow,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/tickets [get]
func GetTickets(c *gin.Context) {
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

	if status != "" {
		whereConditions = append(whereConditions, "t.status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(t.ticket_number ILIKE ? OR t.subject ILIKE ? OR u.name ILIKE ? OR u.email ILIKE ?)")
		whereArgs = append(whereArgs, like, like, like, like)
	}

	whereSQL := "1=1"
	if len(whereConditions) > 0 {
		whereSQL = strings.Join(whereConditions, " AND ")
	}

	countSQL := `
		SELECT COUNT(t.id)
		FROM support_tickets t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE ` + whereSQL

	var total int64
	if err := config.DB.Raw(countSQL, whereArgs...).Scan(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count tickets"))
		return
	}

	dataSQL := `
		SELECT
			t.id::text AS id,
			t.ticket_number,
			t.subject,
			t.category,
			t.status,
			COALESCE(NULLIF(u.name, ''), u.email) AS customer_name,
			u.email AS customer_email,
			(SELECT COUNT(*) FROM ticket_replies r WHERE r.ticket_id = t.id)::int AS reply_count,
			t.created_at,
			t.updated_at
		FROM support_tickets t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE ` + whereSQL + `
		ORDER BY t.updated_at DESC
		LIMIT ? OFFSET ?
	`
	dataArgs := append(whereArgs, limit, offset)

	rows := make([]models.CMSTicketListRow, 0, limit)
	if err := config.DB.Raw(dataSQL, dataArgs...).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch tickets"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Tickets fetched successfully", rows, meta))
}
