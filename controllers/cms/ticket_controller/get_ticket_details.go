package ticket_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetTicketDetails godoc
// @Summary Get ticket details with thread (CMS)
// @Tags CMS - Tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/tickets/{id} [get]
func GetTicketDetails(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid ticket ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var ticket models.SupportTicket
	if err := config.DB.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&ticket, "id = ?", ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ticket not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	var customer struct {
		ID    string
		Name  string
		Email string
	}
	if err := config.DB.WithContext(ctx).
		Table("users").
		Select("id::text AS id, name, email").
		Where("id = ?", ticket.UserID).
		Scan(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket fetched successfully", gin.H{
		"ticket": ticket,
		"customer": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": customer.Email,
		},
	}))
}
