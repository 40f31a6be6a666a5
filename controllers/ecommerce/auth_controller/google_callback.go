package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/utils"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, verifies the ID token via OIDC, upserts the customer, issues a JWT cookie, and redirects back to the storefront
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to storefront after successful login"
// @Failure 400 {object} models.APIResponse "Invalid state or missing authorization code"
// @Router /api/v1/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ [auth.google] state mismatch")
		redirectToStorefrontWithError(c, "Invalid state token")
		return
	}

	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToStorefrontWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ [auth.google] code exchange failed: %v", err)
		redirectToStorefrontWithError(c, "Failed to exchange token")
		return
	}

	// The ID token is verified against Google's OIDC keys instead of
	// trusting the userinfo endpoint
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		log.Printf("❌ [auth.google] no id_token in response")
		redirectToStorefrontWithError(c, "No ID token")
		return
	}

	idToken, err := config.OIDCVerifier.Verify(context.Background(), rawIDToken)
	if err != nil {
		log.Printf("❌ [auth.google] ID token verification failed: %v", err)
		redirectToStorefrontWithError(c, "Invalid ID token")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := idToken.Claims(&googleUser); err != nil {
		log.Printf("❌ [auth.google] failed to decode claims: %v", err)
		redirectToStorefrontWithError(c, "Failed to decode user info")
		return
	}

	if googleUser.Sub == "" {
		redirectToStorefrontWithError(c, "Google ID not found")
		return
	}

	user, err := createOrUpdateUser(&googleUser)
	if err != nil {
		log.Printf("❌ [auth.google] database error: %v", err)
		redirectToStorefrontWithError(c, "Database error")
		return
	}

	if user.Status == "blocked" {
		log.Printf("⚠️ [auth.google] blocked account login attempt: %s", user.Email)
		redirectToStorefrontWithError(c, "Account is blocked")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ [auth.google] JWT error: %v", err)
		redirectToStorefrontWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60,
		"/",
		"",
		isProd,
		true,
	)

	// Short-lived readable cookie so the auth popup can pick up the profile
	userJSON, _ := json.Marshal(user.ToResponse())
	c.SetCookie(
		"user_data",
		string(userJSON),
		60,
		"/",
		"",
		isProd,
		false,
	)

	log.Printf("✅ [auth.google] login successful: %s", user.Email)
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/auth-popup", config.GetStorefrontURL()))
}
