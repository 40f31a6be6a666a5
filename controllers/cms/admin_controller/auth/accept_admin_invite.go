package admin_auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// AcceptAdminInvite godoc
// @Summary Accept admin invitation
// @Description Accept an admin invitation, create the admin account, and log in
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param request body models.AcceptInviteRequest true "Accept invite request"
// @Success 201 {object} models.APIResponse{data=models.AdminResponse}
// @Failure 400 {object} models.APIResponse "Invalid request or invalid token"
// @Failure 404 {object} models.APIResponse "Invitation not found or expired"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/accept-invite [post]
func AcceptAdminInvite(c *gin.Context) {
	var req models.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The newest unused invite for this email wins
	var invite models.AdminInvite
	if err := config.DB.WithContext(ctx).
		Where("email = ? AND used = ?", req.Email, false).
		Order("created_at DESC").
		First(&invite).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Invitation not found or already used"))
			return
		}
		log.Printf("[admin.accept-invite] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	authService := services.GetAdminAuthService()
	if authService.HashToken(req.Token) != invite.TokenHash {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid or expired invitation token"))
		return
	}

	if authService.IsInviteExpired(invite.ExpiresAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invitation has expired"))
		return
	}

	var existingAdmin models.Admin
	if err := config.DB.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existingAdmin).Error; err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin account already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("[admin.accept-invite] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[admin.accept-invite] password hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	now := time.Now()
	admin := models.Admin{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         "admin", // invites always create regular admins
		Status:       "active",
		LastLoginAt:  &now,
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		return tx.Model(&invite).Updates(map[string]interface{}{
			"used":    true,
			"used_at": now,
		}).Error
	})
	if err != nil {
		log.Printf("[admin.accept-invite] failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create admin account"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[admin.accept-invite] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	sessionService := services.GetAdminSessionService()
	if _, err := sessionService.CreateSession(ctx, admin.ID, token, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.Printf("[admin.accept-invite] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, 24*60*60, "/", "", false, true)

	services.LogActivitySuccess(admin.ID, admin.Email,
		models.ActionAcceptAdminInvite, models.ResourceTypeAdminInvite,
		invite.ID.String(), admin.Email,
		map[string]interface{}{
			"email":  admin.Email,
			"name":   admin.Name,
			"role":   admin.Role,
			"status": admin.Status,
		}, c)

	log.Printf("✅ [admin.accept-invite] admin account created: %s (%s)", admin.ID, admin.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Admin account created successfully", admin.ToResponse()))
}
