package wallet_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func topUpTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/topup", func(c *gin.Context) {
		c.Set("userID", uuid.Must(uuid.NewV7()).String())
		c.Set("userEmail", "shopper@example.com")
		c.Next()
	}, TopUpWallet)
	return router
}

// Snap only charges whole currency units, so a fractional amount has to be
// refused up front instead of charging less than the ledger records.
func TestTopUpWalletRejectsFractionalAmount(t *testing.T) {
	router := topUpTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/topup", strings.NewReader(`{"amount":"1.99"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "whole number")
}

func TestTopUpWalletRejectsInvalidAmount(t *testing.T) {
	router := topUpTestRouter()

	for _, amount := range []string{"0", "-25", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/topup", strings.NewReader(`{"amount":"`+amount+`"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "amount %q", amount)
	}
}
