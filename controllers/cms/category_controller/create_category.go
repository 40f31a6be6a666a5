package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a parent category or, when parent_id is given, a subcategory
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate name under same parent"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Status:      "Inactive",
	}

	// Subcategories hang off a top-level parent; only one level of nesting
	if req.ParentID != nil {
		var parent models.Category
		if err := config.DB.WithContext(ctx).
			First(&parent, "id = ?", *req.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Selected parent category must be top-level"))
			return
		}
		category.ParentID = req.ParentID
		category.ParentName = &parent.Name
	}

	// Names are unique among siblings
	var dupeCount int64
	dupeQuery := config.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", req.Name)
	if req.ParentID != nil {
		dupeQuery = dupeQuery.Where("parent_id = ?", *req.ParentID)
	} else {
		dupeQuery = dupeQuery.Where("parent_id IS NULL")
	}
	if err := dupeQuery.Count(&dupeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if dupeCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this name already exists"))
		return
	}

	if err := config.DB.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[category.create] failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
