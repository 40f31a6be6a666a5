package ticket_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/models"
	"gorm.io/gorm"
)

// GetTicketDetails godoc
// @Summary Get a support ticket with its thread
// @Description Ticket and replies in chronological order, restricted to the ticket's owner
// @Tags User - Support
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.APIResponse{data=models.SupportTicket}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/user/tickets/{id} [get]
func GetTicketDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

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
		Where("id = ? AND user_id = ?", ticketID, userID).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Ticket not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ticket"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket fetched successfully", ticket))
}
