package blog_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// normalizeSlug lowercases and dashes a slug candidate
func normalizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

// CreatePost godoc
// @Summary Create a blog post
// @Description Create a draft blog post authored by the current admin
// @Tags CMS - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.BlogPostRequest true "Post details"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Duplicate slug"
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/posts [post]
func CreatePost(c *gin.Context) {
	var req models.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin session"))
		return
	}
	adminID, err := uuid.Parse(adminIDRaw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin session"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		Select("id, name").
		First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to resolve admin"))
		return
	}

	slug := normalizeSlug(req.Slug)

	var dupeCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ?", slug).
		Count(&dupeCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if dupeCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this slug already exists"))
		return
	}

	post := models.BlogPost{
		Title:      req.Title,
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Tags:       models.TagList(req.Tags),
		AuthorID:   admin.ID,
		AuthorName: admin.Name,
		Status:     models.PostStatusDraft,
	}

	if err := config.DB.WithContext(ctx).Create(&post).Error; err != nil {
		log.Printf("[blog.create] failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Post created successfully", post))
}
