package apperror

import "net/http"

// Kind classifies an AppError by who is at fault.
type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindConfiguration   Kind = "ConfigurationError"
	KindUpstreamClient  Kind = "UpstreamClientError"
	KindUpstreamAuth    Kind = "UpstreamAuthError"
	KindUpstreamGeneric Kind = "UpstreamGenericError"
	KindInternal        Kind = "InternalError"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Details is rendered to the client as-is.
	Details any   `json:"details,omitempty"`
	Err     error `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    KindInternal,
		Message: message,
		Err:     err,
	}
}

// WithDetails attaches a client-visible payload and returns the same error.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

func Validation(message string) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Kind = KindValidation
	return e
}

func Configuration(message string) *AppError {
	e := New(http.StatusInternalServerError, message, nil)
	e.Kind = KindConfiguration
	return e
}

func UpstreamClient(message string, err error) *AppError {
	e := New(http.StatusBadRequest, message, err)
	e.Kind = KindUpstreamClient
	return e
}

func UpstreamAuth(message string, err error) *AppError {
	e := New(http.StatusUnauthorized, message, err)
	e.Kind = KindUpstreamAuth
	return e
}

func UpstreamGeneric(message string, err error) *AppError {
	e := New(http.StatusInternalServerError, message, err)
	e.Kind = KindUpstreamGeneric
	return e
}

// IsServerFault reports whether the error should be logged as a server-side failure.
func (e *AppError) IsServerFault() bool {
	return e.Code >= http.StatusInternalServerError
}
