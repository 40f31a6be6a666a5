package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow: generates a state token, stores it in a cookie, and redirects to Google's consent page
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Router /api/v1/auth/google/login [get]
func GoogleLogin(c *gin.Context) {
	state := uuid.New().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"oauth_state",
		state,
		3600,
		"/",
		"",
		false,
		true,
	)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	log.Printf("[auth.google] redirecting to consent page (state %s)", state)

	c.Redirect(http.StatusTemporaryRedirect, url)
}
