package services

import (
	"fmt"
	"log"
	"time"

	"github.com/novamart-commerce/novamart-backoffice/config"
)

// Login lockout policy for the admin surface. Five failed attempts inside
// fifteen minutes locks the account out for fifteen minutes.
const (
	maxFailedLogins    = 5
	failedLoginWindow  = 15 * time.Minute
	loginLockoutPeriod = 15 * time.Minute
)

// LoginGuard throttles repeated failed admin logins using Redis counters
type LoginGuard struct{}

func NewLoginGuard() *LoginGuard {
	return &LoginGuard{}
}

func failedLoginKey(email string) string {
	return "login:failed:" + email
}

func lockoutKey(email string) string {
	return "login:lockout:" + email
}

// IsLockedOut reports whether the account is currently locked out and, if
// so, how long until the lockout expires
func (g *LoginGuard) IsLockedOut(email string) (bool, time.Duration) {
	ttl, err := config.RedisClient.TTL(config.Ctx, lockoutKey(email)).Result()
	if err != nil {
		log.Printf("⚠️ [login-guard] TTL check failed for %s: %v", email, err)
		return false, 0
	}
	if ttl > 0 {
		return true, ttl
	}
	return false, 0
}

// RecordFailure increments the failed-attempt counter and trips the lockout
// once the threshold is crossed
func (g *LoginGuard) RecordFailure(email string) error {
	key := failedLoginKey(email)

	count, err := config.RedisClient.Incr(config.Ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}

	if count == 1 {
		config.RedisClient.Expire(config.Ctx, key, failedLoginWindow)
	}

	if count >= maxFailedLogins {
		if err := config.RedisClient.Set(config.Ctx, lockoutKey(email), 1, loginLockoutPeriod).Err(); err != nil {
			return fmt.Errorf("failed to set lockout: %w", err)
		}
		config.RedisClient.Del(config.Ctx, key)
		log.Printf("⚠️ [login-guard] locked out %s after %d failed attempts", email, count)
	}

	return nil
}

// RecordSuccess clears any failed-attempt state after a successful login
func (g *LoginGuard) RecordSuccess(email string) {
	config.RedisClient.Del(config.Ctx, failedLoginKey(email), lockoutKey(email))
}

// Global instance
var loginGuard *LoginGuard

func GetLoginGuard() *LoginGuard {
	if loginGuard == nil {
		loginGuard = NewLoginGuard()
	}
	return loginGuard
}
