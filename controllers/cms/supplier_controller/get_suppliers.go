package supplier_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetSuppliers godoc
// @Summary Get suppliers
// @Description Paginated supplier list with product counts, optional status filter and search
// @Tags CMS - Suppliers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Param q query string false "Search by company, contact or email"
// @Success 200 {object} models.APIResponse{data=[]models.SupplierListRow,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/suppliers [get]
func GetSuppliers(c *gin.Context) {
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

	countQuery := config.DB.Model(&models.Supplier{})
	whereConditions := []string{}
	whereArgs := []interface{}{}

	if status == "active" || status == "inactive" {
		countQuery = countQuery.Where("status = ?", status)
		whereConditions = append(whereConditions, "s.status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		countQuery = countQuery.Where("company_name ILIKE ? OR contact_name ILIKE ? OR email ILIKE ?", like, like, like)
		whereConditions = append(whereConditions, "(s.company_name ILIKE ? OR s.contact_name ILIKE ? OR s.email ILIKE ?)")
		whereArgs = append(whereArgs, like, like, like)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count suppliers"))
		return
	}

	dataSQL := `
		SELECT s.*, COUNT(p.id)::int AS product_count
		FROM suppliers s
		LEFT JOIN products p ON p.supplier_id = s.id
	`
	if len(whereConditions) > 0 {
		dataSQL += " WHERE " + strings.Join(whereConditions, " AND ")
	}
	dataSQL += `
		GROUP BY s.id
		ORDER BY s.created_at DESC
		LIMIT ? OFFSET ?
	`
	whereArgs = append(whereArgs, limit, offset)

	rows := make([]models.SupplierListRow, 0, limit)
	if err := config.DB.Raw(dataSQL, whereArgs...).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suppliers"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Suppliers fetched successfully", rows, meta))
}
