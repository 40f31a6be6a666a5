package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	adminTokenTTL    = 7 * 24 * time.Hour
	adminTokenIssuer = "novamart-backoffice"
)

// AdminJWTClaims carries the admin identity inside a signed token. The token
// is only half of authentication; the session row is the other half.
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies admin tokens with a single HMAC secret.
type JWTService struct {
	secret []byte
}

var jwtService *JWTService

// InitJWTService wires the signing secret at boot. An empty secret is a
// configuration error, not something to default.
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secret: []byte(secretKey)}
	return nil
}

// GetJWTService returns the shared service, falling back to JWT_SECRET for
// tooling that skips the boot sequence.
func GetJWTService() *JWTService {
	if jwtService == nil {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secret: []byte(secret)}
	}
	return jwtService
}

// GenerateAdminJWT issues a 7-day token for an admin.
func (j *JWTService) GenerateAdminJWT(adminID, email string) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}

	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    adminTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAdminJWT parses and validates a token. Anything not signed with
// HS256 by this issuer, or missing the admin identity claims, is rejected.
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminTokenIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

// Package-level helpers bound to the shared service

func GenerateAdminJWT(adminID, email string) (string, error) {
	return GetJWTService().GenerateAdminJWT(adminID, email)
}

func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	return GetJWTService().VerifyAdminJWT(tokenString)
}
