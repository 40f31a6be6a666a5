package ticket_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"gorm.io/gorm"
)

// ReplyTicket godoc
// @Summary Reply to a support ticket (CMS)
// @Description Append an admin reply to the thread, notify the customer in-app and by email
// @Tags CMS - Tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID (UUID)"
// @Param reply body models.TicketReplyRequest true "Reply body"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Ticket closed"
// @Router /api/v1/admin/tickets/{id}/replies [post]
func ReplyTicket(c *gin.Context) {
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

	adminIDRaw, exists := c.Get("adminID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin session"))
		return
	}
	adminID, err := uuid.Parse(adminIDRaw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid admin session"))
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

	if ticket.Status == models.TicketStatusClosed {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Cannot reply to a closed ticket"))
		return
	}

	var admin models.Admin
	if err := config.DB.WithContext(ctx).
		Select("id, name, email").
		First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to resolve admin"))
		return
	}

	var reply models.TicketReply
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reply = models.TicketReply{
			TicketID:   ticket.ID,
			AuthorType: "admin",
			AuthorID:   admin.ID,
			AuthorName: admin.Name,
			Body:       req.Body,
		}
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}

		// An admin reply moves an open ticket to pending (awaiting customer)
		if ticket.Status == models.TicketStatusOpen {
			if err := tx.Model(&ticket).Update("status", models.TicketStatusPending).Error; err != nil {
				return err
			}
			ticket.Status = models.TicketStatusPending
		}

		if err := services.EmitEvent(tx, models.EventTicketReplied, ticket.ID, map[string]interface{}{
			"ticket_number": ticket.TicketNumber,
			"author_type":   "admin",
		}); err != nil {
			return err
		}

		title := "New reply on ticket " + ticket.TicketNumber
		if _, err := services.NotifyUser(tx, ticket.UserID, models.NotificationTypeTicket, title, req.Body); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		log.Printf("❌ [admin.tickets] reply failed for %s: %v", ticketID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save reply"))
		return
	}

	// Email the customer in the background
	var customer struct {
		Name  string
		Email string
	}
	if err := config.DB.WithContext(ctx).
		Table("users").
		Select("name, email").
		Where("id = ?", ticket.UserID).
		Scan(&customer).Error; err == nil && customer.Email != "" {
		go func(data services.TicketReplyEmailData) {
			resend := services.NewResendClient()
			if err := resend.SendTicketReplyEmail(data); err != nil {
				log.Printf("❌ [admin.tickets] reply email failed for %s: %v", data.TicketNumber, err)
			}
		}(services.TicketReplyEmailData{
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			TicketNumber:  ticket.TicketNumber,
			Subject:       ticket.Subject,
			ReplyBody:     req.Body,
			TicketLink:    os.Getenv("STOREFRONT_URL") + "/support/tickets/" + ticket.ID.String(),
		})
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply added successfully", reply))
}
