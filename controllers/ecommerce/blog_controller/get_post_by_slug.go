package storefront_blog_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetPostBySlug godoc
// @Summary Get a published blog post
// @Description Full post body looked up by slug; drafts are invisible here
// @Tags Store - Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.APIResponse{data=models.BlogPost}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/store/blog/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.PostStatusPublished).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}
