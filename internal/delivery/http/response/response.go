package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the wire shape of every accepted submission.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the wire shape of every failure. The message never
// contains internal identifiers or provider error bodies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessResponse{
		Success: true,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error: message,
	})
}
