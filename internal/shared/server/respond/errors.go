package respond

import (
	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/telemetry"
)

// ErrorResponse is the uniform error envelope returned to callers.
// The UI only consumes the message, so the body stays flat.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and logs the failure with its
// internal code. The code never reaches the caller.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": middleware.RequestIDFromContext(c),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
