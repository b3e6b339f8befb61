package usecase

import (
	"context"
	"errors"

	"contact-relay/config"
	"contact-relay/internal/domain"
	"contact-relay/pkg/apperror"
	"contact-relay/pkg/email"
	"contact-relay/pkg/logger"
	"contact-relay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingFields      = "Missing required fields: firstName, lastName, email, message"
	MsgInvalidEmail       = "Invalid email format"
	MsgKeyNotConfigured   = "Brevo API key not configured. Please add BREVO_API_KEY to your environment"
	MsgInvalidRequestData = "Invalid request data"
	MsgInvalidAPIKey      = "Invalid Brevo API key"
	MsgSendFailed         = "Failed to send email"

	defaultSubjectTopic = "New Message"
)

type contactUsecase struct {
	sender   domain.MailSender
	cfg      *config.Config
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.MailSender, cfg *config.Config, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		cfg:      cfg,
		validate: validate,
	}
}

// SendContactMessage validates the submission, builds the email and relays it.
// Every returned error is an *apperror.AppError.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) (*domain.SendResult, error) {
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Debug("Submission rejected", "errors", validation.FormatValidationErrors(err))
		if validation.Classify(err) == validation.FailureInvalidEmail {
			return nil, apperror.Validation(MsgInvalidEmail)
		}
		return nil, apperror.Validation(MsgMissingFields)
	}

	if !uc.cfg.HasBrevoKey() {
		return nil, apperror.Configuration(MsgKeyNotConfigured)
	}

	out, err := uc.buildEmail(req)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result, err := uc.sender.Send(ctx, out)
	if err != nil {
		return nil, mapSendError(err)
	}

	logger.Log.Info("Email sent successfully", "message_id", result.MessageID, "recipient", out.RecipientEmail)
	return result, nil
}

func (uc *contactUsecase) buildEmail(req *domain.ContactSubmission) (*domain.OutboundEmail, error) {
	html, text, err := email.RenderContact(email.ContactEmailData{
		SenderName:  req.FullName(),
		SenderEmail: req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	})
	if err != nil {
		return nil, err
	}

	return &domain.OutboundEmail{
		SenderName:     req.FullName(),
		SenderEmail:    req.Email,
		RecipientName:  uc.cfg.ReceiverName,
		RecipientEmail: uc.cfg.ReceiverEmail,
		ReplyTo:        req.Email,
		Subject:        uc.subject(req.ProjectType),
		HTMLBody:       html,
		TextBody:       text,
	}, nil
}

func (uc *contactUsecase) subject(projectType string) string {
	topic := projectType
	if topic == "" {
		topic = defaultSubjectTopic
	}
	return uc.cfg.SubjectPrefix + ": " + topic
}

func mapSendError(err error) *apperror.AppError {
	var upstreamErr *email.UpstreamError
	if !errors.As(err, &upstreamErr) {
		logger.Log.Error("Email send failed", "error", err)
		return apperror.UpstreamGeneric(MsgSendFailed, err).WithDetails(err.Error())
	}

	logger.Log.Error("Email send failed",
		"kind", upstreamErr.Kind.String(),
		"status", upstreamErr.StatusCode,
		"error", upstreamErr.Error(),
		"response", string(upstreamErr.Body),
	)

	switch upstreamErr.Kind {
	case email.ClientFailure:
		return apperror.UpstreamClient(MsgInvalidRequestData, err).WithDetails(upstreamErr.Details())
	case email.AuthFailure:
		return apperror.UpstreamAuth(MsgInvalidAPIKey, err)
	default:
		return apperror.UpstreamGeneric(MsgSendFailed, err).WithDetails(err.Error())
	}
}
