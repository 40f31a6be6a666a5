package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category; blocked while it still has products or subcategories
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Category still in use"
// @Router /api/v1/admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.DB.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	var childCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("parent_id = ?", categoryID).
		Count(&childCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if childCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has subcategories"))
		return
	}

	var productCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("sub_category_id = ?", categoryID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has products; move them first"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Delete(&models.Category{}, "id = ?", categoryID).Error; err != nil {
		log.Printf("[category.delete] failed to delete category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", map[string]string{
		"id": categoryID.String(),
	}))
}
