package admin_auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// CreateAdminInvite godoc
// @Summary Create admin invite (Super admin only)
// @Description Generate and send an invite email to become an admin. Super admin only.
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inviteRequest body models.CreateAdminInviteRequest true "Email to invite"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid request or already invited"
// @Failure 403 {object} models.APIResponse "Super admin access required"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/invites [post]
func CreateAdminInvite(c *gin.Context) {
	// Middleware already checked super_admin, but we double-check
	adminRole, exists := c.Get("adminRole")
	if !exists || adminRole != "super_admin" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Super admin access required"))
		return
	}

	var req models.CreateAdminInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existingAdmin models.Admin
	if err := config.DB.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&existingAdmin).Error; err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin with this email already exists"))
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("[admin.invites.create] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	authService := services.GetAdminAuthService()
	token, err := authService.GenerateInviteToken()
	if err != nil {
		log.Printf("[admin.invites.create] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	tokenHash := authService.HashToken(token)
	expiresAt := authService.GetInviteTokenExpiration()

	invite := models.AdminInvite{
		Email:     req.Email,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		Used:      false,
	}

	if err := config.DB.WithContext(ctx).Create(&invite).Error; err != nil {
		log.Printf("[admin.invites.create] failed to create invite: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create invite"))
		return
	}

	adminIDRaw, _ := c.Get("adminID")
	adminEmail, _ := c.Get("adminEmail")
	adminID, _ := uuid.Parse(adminIDRaw.(string))

	services.LogActivitySuccess(adminID, adminEmail.(string),
		models.ActionCreateAdminInvite, models.ResourceTypeAdminInvite,
		invite.ID.String(), req.Email,
		map[string]interface{}{
			"email":      req.Email,
			"expires_at": expiresAt,
		}, c)

	go sendAdminInviteEmail(req.Email, token)

	log.Printf("✅ [admin.invites.create] invite created for %s (expires %v)", req.Email, expiresAt)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Invite created and email sent", map[string]interface{}{
		"email":   req.Email,
		"expires": expiresAt,
	}))
}

// sendAdminInviteEmail sends the invitation email (async)
func sendAdminInviteEmail(email string, token string) {
	resendClient := services.NewResendClient()
	frontendURL := os.Getenv("ADMIN_FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	inviteLink := frontendURL + "/accept-invite?email=" + email + "&token=" + token

	emailData := services.AdminInviteEmailData{
		AdminName:  email, // Updated when they accept
		AdminEmail: email,
		InviteLink: inviteLink,
	}

	if err := resendClient.SendAdminInviteEmail(emailData); err != nil {
		log.Printf("❌ [admin.invites.create] failed to send email to %s: %v", email, err)
	}
}
