package storefront_category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	category_cache "github.com/novamart-commerce/novamart-backoffice/cache"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetStorefrontCategories godoc
// @Summary Get storefront categories
// @Description Active parent categories with their active subcategories and product counts. Served from the category cache when warm.
// @Tags Store - Categories
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CategoryWithProducts}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/store/categories [get]
func GetStorefrontCategories(c *gin.Context) {
	parents, productCounts, ok := category_cache.GetTree()
	if !ok {
		if err := config.DB.
			Where("parent_id IS NULL").
			Order("created_at ASC").
			Preload("Children", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			Find(&parents).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}

		categoryIDs := make([]string, 0, len(parents)*4)
		for _, p := range parents {
			categoryIDs = append(categoryIDs, p.ID.String())
			for _, child := range p.Children {
				categoryIDs = append(categoryIDs, child.ID.String())
			}
		}

		productCounts = make(map[string]int)
		if len(categoryIDs) > 0 {
			type countResult struct {
				SubCategoryID string `gorm:"column:sub_category_id"`
				Count         int    `gorm:"column:count"`
			}
			var counts []countResult
			if err := config.DB.Table("products").
				Select("sub_category_id, COUNT(*) as count").
				Where("sub_category_id IN ? AND status = ?", categoryIDs, "Active").
				Group("sub_category_id").
				Scan(&counts).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
				return
			}
			for _, cr := range counts {
				productCounts[cr.SubCategoryID] = cr.Count
			}
		}

		category_cache.SetTree(parents, productCounts)
	}

	// The storefront only sees active branches
	response := make([]models.CategoryWithProducts, 0, len(parents))
	for _, parent := range parents {
		if parent.Status != "Active" {
			continue
		}

		parentProductCount := 0
		children := make([]models.CategoryWithProducts, 0, len(parent.Children))
		for _, child := range parent.Children {
			if child.Status != "Active" {
				continue
			}
			childCount := productCounts[child.ID.String()]
			parentProductCount += childCount
			children = append(children, models.CategoryWithProducts{
				ID:          child.ID,
				Name:        child.Name,
				Description: child.Description,
				Status:      child.Status,
				ParentID:    child.ParentID,
				ParentName:  child.ParentName,
				CreatedAt:   child.CreatedAt,
				UpdatedAt:   child.UpdatedAt,
				Products:    childCount,
			})
		}

		response = append(response, models.CategoryWithProducts{
			ID:          parent.ID,
			Name:        parent.Name,
			Description: parent.Description,
			Status:      parent.Status,
			ParentID:    parent.ParentID,
			ParentName:  parent.ParentName,
			CreatedAt:   parent.CreatedAt,
			UpdatedAt:   parent.UpdatedAt,
			Products:    parentProductCount,
			Children:    children,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", response))
}
