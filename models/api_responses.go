package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every endpoint returns. Rate is populated
// on rate-limited routes from the request context.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"50"`
	Total      int `json:"total" example:"1280"`
	TotalPages int `json:"total_pages" example:"26"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// newResponse stamps the common envelope fields: the rate-limit snapshot
// left in the context by the limiter middleware and the requested route.
func newResponse(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			resp.Rate = rl
		}
	}
	resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := newResponse(c, message)
	resp.Error = true
	return resp
}
