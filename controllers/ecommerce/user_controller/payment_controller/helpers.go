package payment_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}

	return userID, true
}

// normalizeCardNumber strips spaces and dashes and checks the remainder is
// all digits. Returns the cleaned number or an empty string when invalid.
func normalizeCardNumber(raw string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return ""
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return cleaned
}
