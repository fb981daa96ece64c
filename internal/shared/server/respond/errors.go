package respond

import (
	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/telemetry"
)

// ErrorResponse is the envelope for client-input problems.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the envelope for processing failures.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error sends {"error": message} and aborts the chain.
func Error(c *gin.Context, status int, message string) {
	logError(c, status, message)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// Failure sends {"success": false, "error": message} and aborts the chain.
func Failure(c *gin.Context, status int, message string) {
	logError(c, status, message)
	c.AbortWithStatusJSON(status, FailureResponse{Success: false, Error: message})
}

func logError(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
}
