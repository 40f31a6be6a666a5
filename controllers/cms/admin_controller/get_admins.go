package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
)

// GetAdmins godoc
// @Summary List all admins
// @Description Get list of all admins with their calculated status (paginated)
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.APIResponse{data=[]models.AdminResponse,meta=models.Paging}
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/v1/admin/admins [get]
func GetAdmins(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Admin{}).
		Count(&total).Error; err != nil {
		log.Printf("[admin.list] failed to count admins: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var admins []models.Admin
	if err := config.DB.WithContext(ctx).
		Order("joined_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&admins).Error; err != nil {
		log.Printf("[admin.list] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Status is derived from last login, not stored
	authService := services.GetAdminAuthService()
	responses := make([]models.AdminResponse, len(admins))
	for i, admin := range admins {
		admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)
		responses[i] = admin.ToResponse()
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Admins retrieved", responses, meta))
}
