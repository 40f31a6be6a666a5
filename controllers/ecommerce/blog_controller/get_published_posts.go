package storefront_blog_controller

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

// GetPublishedPosts godoc
// @Summary Get published blog posts
// @Description Paginated published posts, newest first, with optional tag and search filters
// @Tags Store - Blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param tag query string false "Filter by tag"
// @Param q query string false "Search in title and excerpt"
// @Success 200 {object} models.APIResponse{data=[]models.BlogPostSummary,meta=models.Paging}
// @Failure 500 {object} models.APIResponse
// @Router /api/v1/store/blog [get]
func GetPublishedPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("status = ?", models.PostStatusPublished)

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tagJSON, _ := json.Marshal([]string{tag})
		query = query.Where("tags @> ?", string(tagJSON))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count posts"))
		return
	}

	var posts []models.BlogPost
	if err := query.
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	summaries := make([]models.BlogPostSummary, 0, len(posts))
	for i := range posts {
		summary := posts[i].ToSummary()
		summary.Status = ""
		summaries = append(summaries, summary)
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
