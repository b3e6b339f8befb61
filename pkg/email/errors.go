package email

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FailureKind tags an upstream failure by its HTTP status.
type FailureKind int

const (
	// GenericFailure covers transport errors, timeouts and any status not listed below.
	GenericFailure FailureKind = iota
	// ClientFailure means the provider rejected the request shape (400).
	ClientFailure
	// AuthFailure means the provider rejected the credential (401).
	AuthFailure
)

func (k FailureKind) String() string {
	switch k {
	case ClientFailure:
		return "client"
	case AuthFailure:
		return "auth"
	default:
		return "generic"
	}
}

// KindForStatus maps a non-2xx provider status to a FailureKind.
func KindForStatus(status int) FailureKind {
	switch status {
	case http.StatusBadRequest:
		return ClientFailure
	case http.StatusUnauthorized:
		return AuthFailure
	default:
		return GenericFailure
	}
}

// UpstreamError is returned by the provider client for every failed send.
type UpstreamError struct {
	Kind FailureKind
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body is the provider's response payload, if any.
	Body []byte
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("brevo: %s failure (status %d)", e.Kind, e.StatusCode)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Details returns the provider payload in a form suitable for a JSON response:
// raw JSON when the body is valid JSON, a string otherwise, nil when empty.
func (e *UpstreamError) Details() any {
	if len(e.Body) == 0 {
		return nil
	}
	if json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}
