package response

import (
	"github.com/gin-gonic/gin"
)

// The wire shapes here predate this rewrite: successful mutations answer with
// a bare {"message": ...} object and failures with {"error": true, "message": ...}.
// Existing dashboard clients parse these verbatim, so keep them stable.

type MessageBody struct {
	Message string `json:"message"`
}

type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Message writes the success envelope used by mutation endpoints.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// JSON writes a plain payload, used by read endpoints that return DTOs.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error writes the error envelope. Status codes come from the domain error
// classifier, never from handler-level literals.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: true, Message: message})
}
