package ticket_controller

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/middleware"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// generateTicketNumber builds a unique human-readable ticket number, e.g.
// TKT-20260827-7B3E1D. The DB unique index backs it up.
func generateTicketNumber() string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("TKT-%s-%s",
		time.Now().UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(suffix)))
}

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

// CreateTicket godoc
// @Summary Open a support ticket
// @Description Opens a new ticket with the message as the first entry in the thread
// @Tags User - Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticket body models.CreateTicketRequest true "Subject, category and message"
// @Success 201 {object} models.APIResponse{data=models.SupportTicket}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse "Referenced order not found"
// @Router /api/v1/user/tickets [post]
func CreateTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// A ticket may reference one of the customer's own orders
	var orderID *uuid.UUID
	if req.OrderID != nil && *req.OrderID != "" {
		parsed, err := uuid.Parse(*req.OrderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
			return
		}
		var count int64
		if err := config.DB.WithContext(ctx).
			Model(&models.Order{}).
			Where("id = ? AND user_id = ?", parsed, userID).
			Count(&count).Error; err != nil || count == 0 {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		orderID = &parsed
	}

	var userName string
	if name, exists := c.Get("userName"); exists {
		userName, _ = name.(string)
	}

	ticket := models.SupportTicket{
		TicketNumber: generateTicketNumber(),
		UserID:       userID,
		Subject:      req.Subject,
		Category:     req.Category,
		Status:       models.TicketStatusOpen,
		OrderID:      orderID,
	}

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		firstMessage := models.TicketReply{
			TicketID:   ticket.ID,
			AuthorType: "customer",
			AuthorID:   userID,
			AuthorName: userName,
			Body:       req.Body,
		}
		return tx.Create(&firstMessage).Error
	})
	if err != nil {
		log.Printf("❌ [user.tickets] failed to create ticket for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create ticket"))
		return
	}

	log.Printf("✅ [user.tickets] ticket %s opened by %s", ticket.TicketNumber, userID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Ticket created successfully", ticket))
}
