package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// BlogPost is an article on the storefront blog.
type BlogPost struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
	Excerpt     string     `json:"excerpt" gorm:"type:text"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	CoverImage  *string    `json:"cover_image,omitempty" gorm:"type:text"` // Cloudinary URL
	Tags        TagList    `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	AuthorID    uuid.UUID  `json:"author_id" gorm:"type:uuid;not null"`
	AuthorName  string     `json:"author_name" gorm:"not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'draft';check:status IN ('draft', 'published');index"`
	PublishedAt *time.Time `json:"published_at,omitempty" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (bp *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if bp.ID == uuid.Nil {
		bp.ID = uuid.Must(uuid.NewV7())
	}
	if bp.Status == "" {
		bp.Status = PostStatusDraft
	}
	return nil
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

type BlogPostRequest struct {
	Title      string   `json:"title" binding:"required,min=3,max=200"`
	Slug       string   `json:"slug" binding:"required,min=3,max=200"`
	Excerpt    string   `json:"excerpt" binding:"omitempty,max=500"`
	Body       string   `json:"body" binding:"required,min=10"`
	CoverImage *string  `json:"cover_image,omitempty"`
	Tags       []string `json:"tags"`
}

type UpdateBlogPostRequest struct {
	Title      *string   `json:"title" binding:"omitempty,min=3,max=200"`
	Slug       *string   `json:"slug" binding:"omitempty,min=3,max=200"`
	Excerpt    *string   `json:"excerpt" binding:"omitempty,max=500"`
	Body       *string   `json:"body" binding:"omitempty,min=10"`
	CoverImage *string   `json:"cover_image"`
	Tags       *[]string `json:"tags"`
}

// BlogPostSummary is the list view without the full body.
type BlogPostSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	Tags        []string   `json:"tags"`
	AuthorName  string     `json:"author_name"`
	Status      string     `json:"status,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (bp *BlogPost) ToSummary() BlogPostSummary {
	return BlogPostSummary{
		ID:          bp.ID,
		Title:       bp.Title,
		Slug:        bp.Slug,
		Excerpt:     bp.Excerpt,
		CoverImage:  bp.CoverImage,
		Tags:        []string(bp.Tags),
		AuthorName:  bp.AuthorName,
		Status:      bp.Status,
		PublishedAt: bp.PublishedAt,
		CreatedAt:   bp.CreatedAt,
	}
}
