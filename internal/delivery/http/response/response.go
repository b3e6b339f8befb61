package response

import (
	"github.com/gin-gonic/gin"
)

// SendResponse is returned when the provider accepted a message
type SendResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Email sent successfully"`
	MessageID string `json:"messageId" example:"<202401011200.123456@smtp-relay.mailin.fr>"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid email format"`
	Details any    `json:"details,omitempty" swaggertype:"object"`
}

// Sent sends a success response for a relayed message
func Sent(c *gin.Context, code int, message, messageID string) {
	c.JSON(code, SendResponse{
		Success:   true,
		Message:   message,
		MessageID: messageID,
	})
}

// JSON sends an arbitrary payload
func JSON(c *gin.Context, code int, payload any) {
	c.JSON(code, payload)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details any) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
