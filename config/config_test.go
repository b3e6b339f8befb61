package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"EMAIL_PROXY_PORT", "PORT", "BREVO_API_KEY", "BREVO_BASE_URL", "BREVO_TIMEOUT",
		"RECEIVER_EMAIL", "RECEIVER_NAME", "SUBJECT_PREFIX", "SERVICE_NAME", "LOG_LEVEL",
		"GIN_MODE", "SWAGGER_ENABLED",
	} {
		// Setenv registers the restore, Unsetenv makes envDefault apply.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "https://api.brevo.com", cfg.BrevoBaseURL)
	assert.Equal(t, 10*time.Second, cfg.BrevoTimeout)
	assert.Equal(t, DefaultReceiverEmail, cfg.ReceiverEmail)
	assert.Equal(t, "Portfolio Contact", cfg.SubjectPrefix)
	assert.Equal(t, "Brevo Email Proxy", cfg.ServiceName)
	assert.False(t, cfg.HasBrevoKey())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_PROXY_PORT", "4000")
	t.Setenv("BREVO_API_KEY", "  xkeysib-123  ")
	t.Setenv("BREVO_BASE_URL", "http://localhost:9999/")
	t.Setenv("BREVO_TIMEOUT", "2s")
	t.Setenv("RECEIVER_EMAIL", "me@example.org")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "xkeysib-123", cfg.BrevoAPIKey)
	assert.True(t, cfg.HasBrevoKey())
	assert.Equal(t, "http://localhost:9999", cfg.BrevoBaseURL)
	assert.Equal(t, 2*time.Second, cfg.BrevoTimeout)
	assert.Equal(t, "me@example.org", cfg.ReceiverEmail)
}

func TestLoadConfigFallsBackToPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("BREVO_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownGinMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "production")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "GIN_MODE")
}
