package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Message         string     `json:"message"`
	Data            any        `json:"data,omitempty"`
	Error           bool       `json:"error,omitempty"`
	Meta            *Paging    `json:"meta"`
	Rate            *RateQuota `json:"rate_limit,omitempty"`
	RequestedEntity string     `json:"requested_entity,omitempty"`
}

type Paging struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"5"`
}

type RateQuota struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate quota info from Gin context
func rateFromContext(c *gin.Context) *RateQuota {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateQuota"); exists {
		if rq, ok := rate.(*RateQuota); ok {
			return rq
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) APIResponse {
	return APIResponse{
		Message:         message,
		Data:            data,
		Rate:            rateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Paging) APIResponse {
	return APIResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            rateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) APIResponse {
	return APIResponse{
		Message:         message,
		Error:           true,
		Rate:            rateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
