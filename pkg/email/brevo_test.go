package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contact-relay/config"
	"contact-relay/internal/domain"

	helpers "github.com/launchdarkly/go-test-helpers/v3"
	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "xkeysib-test"

var jsonHeaders = http.Header{"Content-Type": []string{"application/json"}}

func testEmail() *domain.OutboundEmail {
	return &domain.OutboundEmail{
		SenderName:     "Ada Lovelace",
		SenderEmail:    "ada@example.com",
		RecipientName:  "Site Owner",
		RecipientEmail: "owner@example.org",
		ReplyTo:        "ada@example.com",
		Subject:        "Portfolio Contact: New Message",
		HTMLBody:       "<p>Hello</p>",
		TextBody:       "Hello",
	}
}

func newTestClient(baseURL string, opts ...BrevoOption) *BrevoClient {
	return NewBrevoClient(&config.Config{
		BrevoAPIKey:  testAPIKey,
		BrevoBaseURL: baseURL,
		BrevoTimeout: time.Second,
	}, opts...)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestBrevoSendSuccess(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusCreated, jsonHeaders, []byte(`{"messageId":"<abc123@smtp-relay>"}`)),
	)

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		result, err := newTestClient(server.URL).Send(context.Background(), testEmail())
		require.NoError(t, err)
		assert.Equal(t, "<abc123@smtp-relay>", result.MessageID)

		info := helpers.RequireValue(t, requestsCh, time.Second)
		assert.Equal(t, http.MethodPost, info.Request.Method)
		assert.Equal(t, "/v3/smtp/email", info.Request.URL.Path)
		assert.Equal(t, testAPIKey, info.Request.Header.Get("api-key"))
		assert.Equal(t, "application/json", info.Request.Header.Get("Accept"))
		assert.Equal(t, "application/json", info.Request.Header.Get("Content-Type"))

		var sent brevoSendRequest
		require.NoError(t, json.Unmarshal(info.Body, &sent))
		assert.Equal(t, "Ada Lovelace", sent.Sender.Name)
		assert.Equal(t, "ada@example.com", sent.Sender.Email)
		require.Len(t, sent.To, 1)
		assert.Equal(t, "owner@example.org", sent.To[0].Email)
		require.NotNil(t, sent.ReplyTo)
		assert.Equal(t, "ada@example.com", sent.ReplyTo.Email)
		assert.Equal(t, "Portfolio Contact: New Message", sent.Subject)
		assert.Equal(t, "<p>Hello</p>", sent.HTMLContent)
		assert.Equal(t, "Hello", sent.TextContent)
	})
}

func TestBrevoSendClassifiesStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   FailureKind
	}{
		{"bad request", http.StatusBadRequest, `{"code":"bad_request","message":"sender is invalid"}`, ClientFailure},
		{"unauthorized", http.StatusUnauthorized, `{"code":"unauthorized"}`, AuthFailure},
		{"server error", http.StatusBadGateway, `upstream exploded`, GenericFailure},
		{"rate limited", http.StatusTooManyRequests, ``, GenericFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := httphelpers.HandlerWithResponse(tc.status, jsonHeaders, []byte(tc.body))
			httphelpers.WithServer(handler, func(server *httptest.Server) {
				result, err := newTestClient(server.URL).Send(context.Background(), testEmail())
				assert.Nil(t, result)

				var upstreamErr *UpstreamError
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, tc.kind, upstreamErr.Kind)
				assert.Equal(t, tc.status, upstreamErr.StatusCode)
				assert.Contains(t, err.Error(), "status code")
			})
		})
	}
}

func TestUpstreamErrorDetails(t *testing.T) {
	jsonErr := &UpstreamError{Body: []byte(`{"code":"bad_request"}`)}
	raw, ok := jsonErr.Details().(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"code":"bad_request"}`, string(raw))

	textErr := &UpstreamError{Body: []byte("oops")}
	assert.Equal(t, "oops", textErr.Details())

	assert.Nil(t, (&UpstreamError{}).Details())
}

func TestBrevoSendTransportFailure(t *testing.T) {
	transport := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: simulated outage")
	})
	client := newTestClient("http://brevo.invalid", WithHTTPClient(&http.Client{Transport: transport}))

	_, err := client.Send(context.Background(), testEmail())

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, GenericFailure, upstreamErr.Kind)
	assert.Zero(t, upstreamErr.StatusCode)
	assert.Contains(t, err.Error(), "simulated outage")
}

func TestBrevoSendHonoursContextCancellation(t *testing.T) {
	handler := httphelpers.HandlerWithStatus(http.StatusCreated)
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestClient(server.URL).Send(ctx, testEmail())

		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, GenericFailure, upstreamErr.Kind)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, ClientFailure, KindForStatus(400))
	assert.Equal(t, AuthFailure, KindForStatus(401))
	assert.Equal(t, GenericFailure, KindForStatus(403))
	assert.Equal(t, GenericFailure, KindForStatus(500))
	assert.Equal(t, "auth", AuthFailure.String())
}
