package domain

import "context"

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	FirstName   string `json:"firstName" validate:"required" example:"Ada"`
	LastName    string `json:"lastName" validate:"required" example:"Lovelace"`
	Email       string `json:"email" validate:"required,contact_email" example:"ada@example.com"`
	Phone       string `json:"phone,omitempty" example:"+44 20 7946 0000"`
	ProjectType string `json:"projectType,omitempty" example:"Web App"`
	Message     string `json:"message" validate:"required" example:"Hello"`
}

// FullName is the submitter's display name.
func (s *ContactSubmission) FullName() string {
	return s.FirstName + " " + s.LastName
}

// OutboundEmail is the provider-neutral message derived from a ContactSubmission.
type OutboundEmail struct {
	SenderName     string
	SenderEmail    string
	RecipientName  string
	RecipientEmail string
	ReplyTo        string
	Subject        string
	HTMLBody       string
	TextBody       string
}

// SendResult is returned by a MailSender after the provider accepted the message.
type SendResult struct {
	MessageID string `json:"messageId"`
}

// MailSender delivers an OutboundEmail through a transactional email provider.
type MailSender interface {
	Send(ctx context.Context, email *OutboundEmail) (*SendResult, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it to the provider
	SendContactMessage(ctx context.Context, req *ContactSubmission) (*SendResult, error)
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"Brevo Email Proxy"`
}
