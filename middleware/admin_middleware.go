package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
)

// AdminAuthMiddleware validates JWT token and checks admin authorization
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		// The JWT is only honored while its session row is alive
		sessionService := services.GetAdminSessionService()
		authService := services.GetAdminAuthService()
		tokenHash := authService.HashToken(token)

		if err := sessionService.TouchSession(ctx, tokenHash); err != nil {
			log.Printf("[auth] session check failed: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)

		// Fetch admin role from database
		var admin models.Admin
		if err := config.DB.WithContext(ctx).
			Select("role", "status").
			Where("id = ?", claims.AdminID).
			First(&admin).Error; err != nil {
			log.Printf("[auth] failed to fetch admin role: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}

		if admin.Status == "suspended" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}

		c.Set("adminRole", admin.Role)

		c.Next()
	}
}

// RequireSuperAdminMiddleware checks if the admin is a super admin
func RequireSuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if adminRole != "super_admin" {
			log.Printf("[auth] non-super-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - super admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
