package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseDeviceType determines if the request is from mobile, tablet, or desktop
func ParseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	// Try X-Forwarded-For first (if behind proxy)
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Try X-Real-IP
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	return c.ClientIP()
}
