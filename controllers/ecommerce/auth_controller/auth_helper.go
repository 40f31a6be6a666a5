package auth_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

func createOrUpdateUser(googleUser *models.GoogleUserInfo) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	result := config.DB.WithContext(ctx).
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login
			now := time.Now()
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleUser.Sub,
				Provider:      "google",
				EmailVerified: googleUser.EmailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
				LastSeenAt:    &now,
			}

			if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: refresh safe fields only
	now := time.Now()
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": googleUser.EmailVerified,
		"last_seen_at":   now,
	}

	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	if user.GoogleID == "" {
		updates["google_id"] = googleUser.Sub
		updates["provider"] = "google"
	}

	if err := config.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = googleUser.EmailVerified
	user.LastSeenAt = &now

	return &user, nil
}

func redirectToStorefrontWithError(c *gin.Context, errorMsg string) {
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", config.GetStorefrontURL(), errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
