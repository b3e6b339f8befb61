package v1

import (
	"errors"
	"io"
	"net/http"

	"contact-relay/internal/delivery/http/response"
	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const msgEmailSent = "Email sent successfully"

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/send-email", handler.SendEmail)
}

// SendEmail godoc
// @Summary      Relay a contact form submission
// @Description  Validates the submission and forwards it as a transactional email through Brevo.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.SendResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactSubmission
	// An empty body is an empty submission and fails on required fields instead.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Sent(c, http.StatusOK, msgEmailSent, result.MessageID)
}
