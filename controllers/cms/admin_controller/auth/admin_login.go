package admin_auth_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Returns JWT token and creates session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.APIResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.APIResponse "Invalid credentials"
// @Failure 403 {object} models.APIResponse "Account suspended"
// @Failure 429 {object} models.APIResponse "Too many failed attempts"
// @Failure 500 {object} models.APIResponse "Server error"
// @Router /api/v1/admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	guard := services.GetLoginGuard()
	if locked, ttl := guard.IsLockedOut(req.Email); locked {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c,
			fmt.Sprintf("Too many failed attempts. Try again in %d minutes", int(ttl.Minutes())+1)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.login] user not found: %s", req.Email)
			if gerr := guard.RecordFailure(req.Email); gerr != nil {
				log.Printf("⚠️ [admin.login] login guard error: %v", gerr)
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		} else {
			log.Printf("[admin.login] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	if admin.Status == "suspended" {
		log.Printf("[admin.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.VerifyPassword(admin.PasswordHash, req.Password) {
		log.Printf("[admin.login] invalid password: %s", req.Email)
		if gerr := guard.RecordFailure(req.Email); gerr != nil {
			log.Printf("⚠️ [admin.login] login guard error: %v", gerr)
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	guard.RecordSuccess(req.Email)

	now := time.Now()
	if err := config.DB.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[admin.login] failed to update last login: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	admin.LastLoginAt = &now

	admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	sessionService := services.GetAdminSessionService()
	_, err = sessionService.CreateSession(
		ctx,
		admin.ID,
		token,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		log.Printf("[admin.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	log.Printf("✅ [admin.login] success: %s (%s)", admin.Email, admin.ID)

	response := models.AdminLoginResponse{
		Admin: admin.ToResponse(),
		Token: token,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
