// Package response writes the JSON envelope every API response is wrapped in:
//
//	{"success": true, "data": ..., "message": "...", "timestamp": "2026-01-20T09:30:00.000Z"}
//	{"success": false, "error": "...", "message": "...", "timestamp": "..."}
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// TimestampLayout matches JavaScript's Date.toISOString, which the dashboard parses.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

func OK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: Timestamp(),
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, errMsg, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success:   false,
		Error:     errMsg,
		Message:   message,
		Timestamp: Timestamp(),
	})
}
