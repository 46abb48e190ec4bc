package email

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"contact-form-backend/config"
	"contact-form-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mail "github.com/wneessen/go-mail"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:        "smtp.example.com",
		SMTPPort:        465,
		SMTPImplicitTLS: true,
		SMTPTimeout:     5 * time.Second,
		SMTPUsername:    "bot@example.com",
		SMTPPassword:    "secret",
		SMTPFromName:    "No reply",
		ContactEmailTo:  "owner@example.com",
		ContactEmailBCC: "audit@example.com",
	}
}

func testEmail() *domain.ContactEmail {
	return &domain.ContactEmail{
		Subject:  "New Contact - Jane Doe",
		ReplyTo:  "jane@x.com",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
	}
}

func TestSendNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPPassword = ""
	svc := NewEmailService(cfg)
	svc.dial = func(context.Context, *mail.Client, *mail.Msg) error {
		t.Fatal("should not dial without credentials")
		return nil
	}

	err := svc.Send(context.Background(), testEmail())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendBuildsMessage(t *testing.T) {
	svc := NewEmailService(testConfig())

	var sent *mail.Msg
	svc.dial = func(_ context.Context, _ *mail.Client, msg *mail.Msg) error {
		sent = msg
		return nil
	}

	require.NoError(t, svc.Send(context.Background(), testEmail()))
	require.NotNil(t, sent)

	assert.Equal(t, []string{"<owner@example.com>"}, sent.GetToString())
	assert.Equal(t, []string{"<audit@example.com>"}, sent.GetBccString())
	assert.Equal(t, []string{"New Contact - Jane Doe"}, sent.GetGenHeader(mail.HeaderSubject))

	var buf bytes.Buffer
	_, err := sent.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "plain body")
	assert.Contains(t, raw, "<p>html body</p>")
	assert.Contains(t, raw, "jane@x.com")
}

func TestSendWrapsTransportFailure(t *testing.T) {
	svc := NewEmailService(testConfig())
	boom := errors.New("535 authentication failed")
	svc.dial = func(context.Context, *mail.Client, *mail.Msg) error { return boom }

	err := svc.Send(context.Background(), testEmail())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "smtp send")
}

func TestSendSkipsUnparsableReplyTo(t *testing.T) {
	svc := NewEmailService(testConfig())
	svc.dial = func(context.Context, *mail.Client, *mail.Msg) error { return nil }

	msg := testEmail()
	msg.ReplyTo = "not an address"
	assert.NoError(t, svc.Send(context.Background(), msg))
}

func TestTLSConfigSecureByDefault(t *testing.T) {
	svc := NewEmailService(testConfig())
	assert.False(t, svc.tlsConfig().InsecureSkipVerify)
	assert.Equal(t, "smtp.example.com", svc.tlsConfig().ServerName)

	cfg := testConfig()
	cfg.SMTPInsecureSkipVerify = true
	assert.True(t, NewEmailService(cfg).tlsConfig().InsecureSkipVerify)
}
