package blog_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// PublishPost godoc
// @Summary Publish a blog post
// @Description Mark a draft post published and stamp published_at
// @Tags CMS - Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Already published"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/posts/{id}/publish [post]
func PublishPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
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

	if post.Status == models.PostStatusPublished {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Post is already published"))
		return
	}

	now := time.Now()
	if err := config.DB.WithContext(ctx).
		Model(&post).
		Updates(map[string]interface{}{
			"status":       models.PostStatusPublished,
			"published_at": now,
		}).Error; err != nil {
		log.Printf("[blog.publish] failed to publish post: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to publish post"))
		return
	}

	post.Status = models.PostStatusPublished
	post.PublishedAt = &now

	log.Printf("✅ [blog.publish] published %s (%s)", post.Slug, post.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post published successfully", post))
}
