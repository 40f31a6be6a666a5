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

// DeletePost godoc
// @Summary Delete a blog post
// @Tags CMS - Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/posts/{id} [delete]
func DeletePost(c *gin.Context) {
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

	if err := config.DB.WithContext(ctx).
		Delete(&models.BlogPost{}, "id = ?", postID).Error; err != nil {
		log.Printf("[blog.delete] failed to delete post: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post"))
		return
	}

	log.Printf("✅ [blog.delete] deleted %s (%s)", post.Slug, postID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post deleted successfully", map[string]string{
		"id": postID.String(),
	}))
}
