package blog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// UpdatePost godoc
// @Summary Update a blog post
// @Tags CMS - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID (UUID)"
// @Param post body models.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate slug"
// @Router /api/v1/admin/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).
		First(&post, "id = ?", postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		slug := normalizeSlug(*req.Slug)
		if slug != post.Slug {
			var dupeCount int64
			if err := config.DB.WithContext(ctx).
				Model(&models.BlogPost{}).
				Where("slug = ? AND id <> ?", slug, postID).
				Count(&dupeCount).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
				return
			}
			if dupeCount > 0 {
				c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
				return
			}
			updates["slug"] = slug
		}
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.Tags != nil {
		updates["tags"] = models.TagList(*req.Tags)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&post).
		Updates(updates).Error; err != nil {
		log.Printf("[blog.update] failed to update post: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	if err := config.DB.WithContext(ctx).
		First(&post, "id = ?", postID).Error; err != nil {
		log.Printf("[blog.update] failed to reload post: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated successfully", post))
}
