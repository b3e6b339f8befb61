package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"contact-relay/config"
	"contact-relay/internal/domain"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
)

const (
	sendEmailPath    = "/v3/smtp/email"
	maxResponseBytes = 1 << 20
)

// BrevoClient sends transactional email through the Brevo HTTP API.
type BrevoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type BrevoOption func(*BrevoClient)

// WithHTTPClient replaces the default pooled client.
func WithHTTPClient(c *http.Client) BrevoOption {
	return func(b *BrevoClient) {
		b.httpClient = c
	}
}

// NewBrevoClient creates a client from the process configuration
func NewBrevoClient(cfg *config.Config, opts ...BrevoOption) *BrevoClient {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.BrevoTimeout

	c := &BrevoClient{
		baseURL:    cfg.BrevoBaseURL,
		apiKey:     cfg.BrevoAPIKey,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsConfigured checks if the client has a credential
func (c *BrevoClient) IsConfigured() bool {
	return c.apiKey != ""
}

type brevoContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoSendRequest struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	ReplyTo     *brevoContact  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}

func newSendRequest(e *domain.OutboundEmail) brevoSendRequest {
	req := brevoSendRequest{
		Sender:      brevoContact{Name: e.SenderName, Email: e.SenderEmail},
		To:          []brevoContact{{Name: e.RecipientName, Email: e.RecipientEmail}},
		Subject:     e.Subject,
		HTMLContent: e.HTMLBody,
		TextContent: e.TextBody,
	}
	if e.ReplyTo != "" {
		req.ReplyTo = &brevoContact{Name: e.SenderName, Email: e.ReplyTo}
	}
	return req
}

// Send posts the email to Brevo. Any failure is returned as *UpstreamError.
func (c *BrevoClient) Send(ctx context.Context, e *domain.OutboundEmail) (*domain.SendResult, error) {
	body, err := json.Marshal(newSendRequest(e))
	if err != nil {
		return nil, &UpstreamError{Kind: GenericFailure, Err: errors.Wrap(err, "brevo: encode request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendEmailPath, bytes.NewReader(body))
	if err != nil {
		return nil, &UpstreamError{Kind: GenericFailure, Err: errors.Wrap(err, "brevo: build request")}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Kind: GenericFailure, Err: errors.Wrap(err, "brevo: send email")}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UpstreamError{Kind: GenericFailure, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "brevo: read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Kind:       KindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       raw,
			Err:        errors.Errorf("brevo: request failed with status code %d", resp.StatusCode),
		}
	}

	var out brevoSendResponse
	if len(raw) > 0 {
		// The provider accepted the message; a body we cannot read only costs us the id.
		_ = json.Unmarshal(raw, &out)
	}
	return &domain.SendResult{MessageID: out.MessageID}, nil
}
