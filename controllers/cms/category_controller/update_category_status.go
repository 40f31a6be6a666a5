package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// UpdateCategoryStatus godoc
// @Summary Update category status
// @Description Set a category Active or Inactive; a subcategory cannot go Active under an Inactive parent
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param status body models.UpdateCategoryStatusRequest true "New status"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/categories/{id}/status [patch]
func UpdateCategoryStatus(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if category.Status == req.Status {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", category))
		return
	}

	// Activating a subcategory requires an active parent
	if req.Status == "Active" && category.ParentID != nil {
		var parent models.Category
		if err := config.DB.
			Select("id, status").
			First(&parent, "id = ?", *category.ParentID).Error; err == nil && parent.Status != "Active" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category must be active first"))
			return
		}
	}

	tx := config.DB.Begin()
	if err := tx.Model(&category).Update("status", req.Status).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update status"))
		return
	}

	// Deactivating a parent cascades to its children
	if req.Status == "Inactive" && category.ParentID == nil {
		if err := tx.Model(&models.Category{}).
			Where("parent_id = ?", categoryID).
			Update("status", "Inactive").Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to cascade status to subcategories"))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update status"))
		return
	}

	category.Status = req.Status
	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category status updated successfully", category))
}
