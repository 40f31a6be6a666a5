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

// UpdateCategory godoc
// @Summary Update a category
// @Description Update category name, description, and optionally parent_id
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Update category"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var input models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	var existing models.Category
	if err := config.DB.First(&existing, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if !hasChanges(input, existing) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	// Validate parent if it's being changed
	if input.ParentID != nil {
		if *input.ParentID == categoryID {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category cannot be its own parent"))
			return
		}

		var parent models.Category
		if err := config.DB.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}

		// Parent must be top-level (no parent of its own)
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Selected parent category must be top-level"))
			return
		}

		existing.ParentName = &parent.Name
	}

	updates := map[string]interface{}{}

	if input.Name != nil {
		updates["name"] = *input.Name
		existing.Name = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
		existing.Description = *input.Description
	}
	if input.ParentID != nil {
		updates["parent_id"] = *input.ParentID
		updates["parent_name"] = existing.ParentName
		existing.ParentID = input.ParentID
	}

	if err := config.DB.Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	// Reload to get fresh data (with updated_at)
	if err := config.DB.First(&existing, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", existing))
}

// hasChanges checks if any field in the request differs from existing
func hasChanges(input models.UpdateCategoryRequest, existing models.Category) bool {
	if input.Name != nil && *input.Name != existing.Name {
		return true
	}
	if input.Description != nil && *input.Description != existing.Description {
		return true
	}
	if input.ParentID != nil {
		if existing.ParentID == nil {
			return true
		}
		if *input.ParentID != *existing.ParentID {
			return true
		}
	}
	return false
}
