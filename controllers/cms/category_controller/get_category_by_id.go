package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Description Retrieve a single category with its children and product count
// @Tags CMS - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	if err := config.DB.WithContext(ctx).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// Count products directly under this category and under its children
	categoryIDs := []string{category.ID.String()}
	for _, child := range category.Children {
		categoryIDs = append(categoryIDs, child.ID.String())
	}

	var productCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("sub_category_id IN ?", categoryIDs).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", gin.H{
		"category": category,
		"products": productCount,
	}))
}
