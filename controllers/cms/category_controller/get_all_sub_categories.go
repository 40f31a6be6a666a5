package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetAllSubCategories godoc
// @Summary Get all subcategories
// @Description Flat list of every subcategory, used by the product form dropdown
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/categories/subcategories [get]
func GetAllSubCategories(c *gin.Context) {
	subs, ok := category_cache.GetSubs()
	if !ok {
		if err := config.DB.
			Where("parent_id IS NOT NULL").
			Order("parent_name ASC, name ASC").
			Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch subcategories"))
			return
		}
		category_cache.SetSubs(subs)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Subcategories fetched successfully", subs))
}
