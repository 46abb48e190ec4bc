package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearMailEnv(t *testing.T) {
	for _, key := range []string{
		"SMTP_USERNAME", "GMAIL_USER", "SMTP_PASSWORD", "GMAIL_APP_PASSWORD", "GMAIL_PASS",
		"SMTP_HOST", "SMTP_PORT", "SMTP_IMPLICIT_TLS", "SMTP_INSECURE_SKIP_VERIFY", "SMTP_TIMEOUT",
		"SMTP_FROM_NAME", "ALLOWED_ORIGINS", "FALLBACK_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearMailEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.True(t, cfg.SMTPImplicitTLS)
	assert.False(t, cfg.SMTPInsecureSkipVerify, "certificate validation must be on by default")
	assert.Equal(t, 15*time.Second, cfg.SMTPTimeout)
	assert.Equal(t, "No reply", cfg.SMTPFromName)
	assert.Equal(t, "submissions", cfg.FallbackDir)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadConfigCredentialFallbacks(t *testing.T) {
	clearMailEnv(t)

	t.Run("Should use legacy gmail variables when SMTP ones are unset", func(t *testing.T) {
		t.Setenv("GMAIL_USER", "bot@example.com")
		t.Setenv("GMAIL_PASS", "account-pass")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "bot@example.com", cfg.SMTPUsername)
		assert.Equal(t, "account-pass", cfg.SMTPPassword)
	})

	t.Run("Should prefer the app password over the account password", func(t *testing.T) {
		t.Setenv("GMAIL_APP_PASSWORD", "app-token")
		t.Setenv("GMAIL_PASS", "account-pass")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "app-token", cfg.SMTPPassword)
	})

	t.Run("Should prefer explicit SMTP variables", func(t *testing.T) {
		t.Setenv("SMTP_PASSWORD", "smtp-secret")
		t.Setenv("GMAIL_APP_PASSWORD", "app-token")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "smtp-secret", cfg.SMTPPassword)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "3s")
	t.Setenv("TEST_LIST", " https://a.example/ , ,https://b.example")

	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
	assert.True(t, getEnvBool("TEST_BOOL", false))
	assert.Equal(t, 3*time.Second, getEnvDuration("TEST_DURATION", time.Second))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvList("TEST_LIST"))
}
