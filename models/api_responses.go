package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every storefront endpoint answers with. Data
// carries the payload on success; Error marks failures; Meta is present on
// paginated listings; Rate echoes the caller's current rate-limit window.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

// Pagination describes one page of a product listing.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"12"`
	TotalPages int `json:"total_pages" example:"1"`
}

// RateLimiter reports the caller's standing against the fixed request
// window, as placed on the context by the rate-limit middleware.
type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// rateFromContext pulls the rate-limit standing off the request context.
// Nil when the middleware did not run (tests, unthrottled routes).
func rateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

// requestedEntity tags the response with the method and route pattern that
// produced it, e.g. "GET /api/v1/cart".
func requestedEntity(c *gin.Context) string {
	return c.Request.Method + " " + c.FullPath()
}

// SuccessResponse wraps a payload in the envelope.
func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// PaginatedResponse wraps one listing page plus its pagination meta.
func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}

// ErrorResponse wraps a failure message in the envelope.
func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            rateFromContext(c),
		RequestedEntity: requestedEntity(c),
	}
}
