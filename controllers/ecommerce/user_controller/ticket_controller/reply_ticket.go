package ticket_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// ReplyTicket godoc
// @Summary Reply to own support ticket
// @Description Appends a customer reply to the thread. Replying to a pending or resolved ticket reopens it for the support team.
// @Tags User - Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param reply body models.TicketReplyRequest true "Reply body"
// @Success 201 {object} models.APIResponse{data=models.TicketReply}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Ticket closed"
// @Router /api/v1/user/tickets/{id}/replies [post]
func ReplyTicket(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid ticket ID"))
		return
	}

	var req models.TicketReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Reply body is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", ticketID, userID).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ticket not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ticket"))
		return
	}

	if ticket.Status == models.TicketStatusClosed {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot reply to a closed ticket"))
		return
	}

	var userName string
	if name, exists := c.Get("userName"); exists {
		userName, _ = name.(string)
	}

	var reply models.TicketReply
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reply = models.TicketReply{
			TicketID:   ticket.ID,
			AuthorType: "customer",
			AuthorID:   userID,
			AuthorName: userName,
			Body:       req.Body,
		}
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}

		// A customer reply puts the ticket back in the support queue
		if ticket.Status != models.TicketStatusOpen {
			if err := tx.Model(&ticket).
				Updates(map[string]interface{}{
					"status":      models.TicketStatusOpen,
					"resolved_at": nil,
				}).Error; err != nil {
				return err
			}
			ticket.Status = models.TicketStatusOpen
		}

		return services.EmitEvent(tx, models.EventTicketReplied, ticket.ID, map[string]interface{}{
			"ticket_number": ticket.TicketNumber,
			"author_type":   "customer",
		})
	})
	if err != nil {
		log.Printf("❌ [user.tickets] reply failed for %s: %v", ticketID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save reply"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply added successfully", reply))
}
