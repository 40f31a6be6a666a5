package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth configures the OAuth2 client and the OIDC verifier used
// for storefront customer sign-in.
func InitGoogleOAuth() {
	ctx := context.Background()

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Fatal("❌ GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set in .env")
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/v1/auth/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	// OIDC provider verifies the ID token returned by Google
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Fatalf("❌ Failed to create OIDC provider: %v", err)
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}

// GetStorefrontURL returns the storefront frontend URL from environment
func GetStorefrontURL() string {
	if url := os.Getenv("STOREFRONT_URL"); url != "" {
		return url
	}
	return "http://localhost:3001"
}
