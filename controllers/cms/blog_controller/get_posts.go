package blog_controller

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetPosts godoc
// @Summary Get blog posts (CMS)
// @Description Paginated post list including drafts, optional status filter and search
// @Tags CMS - Blog
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" Enums(draft, published)
// @Param q query string false "Search by title or tag"
// @Success 200 {object} models.APIResponse{data=[]models.BlogPostSummary,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/admin/posts [get]
func GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.BlogPost{})

	if status := c.Query("status"); status == models.PostStatusDraft || status == models.PostStatusPublished {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("title ILIKE ? OR tags::text ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count posts"))
		return
	}

	posts := make([]models.BlogPost, 0)
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	summaries := make([]models.BlogPostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].ToSummary())
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Paging{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched successfully", summaries, meta))
}
