package ticket_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// UpdateTicketStatus godoc
// @Summary Update ticket status (CMS)
// @Description Move a ticket between open, pending, resolved and closed
// @Tags CMS - Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID (UUID)"
// @Param status body models.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "Invalid transition"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/tickets/{id}/status [patch]
func UpdateTicketStatus(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid ticket ID"))
		return
	}

	var req models.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).
		First(&ticket, "id = ?", ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ticket not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if ticket.Status == req.Status {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", ticket))
		return
	}
	if !models.CanTransitionTicket(ticket.Status, req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cannot move ticket from "+ticket.Status+" to "+req.Status))
		return
	}

	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": req.Status}
		if req.Status == models.TicketStatusResolved {
			now := time.Now()
			updates["resolved_at"] = now
			ticket.ResolvedAt = &now
		}
		if err := tx.Model(&ticket).Updates(updates).Error; err != nil {
			return err
		}

		title := "Ticket " + ticket.TicketNumber + " " + req.Status
		body := "Your support ticket is now " + req.Status + "."
		if _, err := services.NotifyUser(tx, ticket.UserID, models.NotificationTypeTicket, title, body); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ [admin.tickets] status update failed for %s: %v", ticketID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update ticket status"))
		return
	}

	ticket.Status = req.Status
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket status updated successfully", ticket))
}
