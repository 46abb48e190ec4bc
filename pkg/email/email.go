package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"contact-form-backend/config"
	"contact-form-backend/internal/domain"

	mail "github.com/wneessen/go-mail"
)

// EmailService sends contact notifications over SMTP via go-mail
type EmailService struct {
	host               string
	port               int
	username           string
	password           string
	fromName           string
	fromEmail          string
	toEmail            string
	bccEmail           string
	implicitTLS        bool
	insecureSkipVerify bool
	timeout            time.Duration

	// dial is swapped in tests to avoid the network
	dial func(ctx context.Context, client *mail.Client, msg *mail.Msg) error
}

var ErrNotConfigured = errors.New("email service is not configured")

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:               cfg.SMTPHost,
		port:               cfg.SMTPPort,
		username:           cfg.SMTPUsername,
		password:           cfg.SMTPPassword,
		fromName:           cfg.SMTPFromName,
		fromEmail:          cfg.SMTPUsername, // the login account is the sender
		toEmail:            cfg.ContactEmailTo,
		bccEmail:           cfg.ContactEmailBCC,
		implicitTLS:        cfg.SMTPImplicitTLS,
		insecureSkipVerify: cfg.SMTPInsecureSkipVerify,
		timeout:            cfg.SMTPTimeout,
		dial: func(ctx context.Context, client *mail.Client, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// Send delivers the contact email to the primary recipient with the blind copy
func (s *EmailService) Send(ctx context.Context, data *domain.ContactEmail) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	msg, err := s.buildMessage(data)
	if err != nil {
		return err
	}

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := s.dial(ctx, client, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *EmailService) buildMessage(data *domain.ContactEmail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.toEmail); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if s.bccEmail != "" {
		if err := msg.Bcc(s.bccEmail); err != nil {
			return nil, fmt.Errorf("smtp bcc: %w", err)
		}
	}
	// Submitter addresses are not validated, so an unparsable one is just skipped
	if data.ReplyTo != "" {
		_ = msg.ReplyTo(data.ReplyTo)
	}
	msg.Subject(data.Subject)
	msg.SetBodyString(mail.TypeTextPlain, data.TextBody)
	msg.AddAlternativeString(mail.TypeTextHTML, data.HTMLBody)
	return msg, nil
}

func (s *EmailService) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
		mail.WithTimeout(s.timeout),
		mail.WithTLSConfig(s.tlsConfig()),
	}
	if s.implicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	// Port goes last so the TLS options above cannot reset it
	opts = append(opts, mail.WithPort(s.port))
	return mail.NewClient(s.host, opts...)
}

func (s *EmailService) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName:         s.host,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: s.insecureSkipVerify, // #nosec G402 -- opt-in via SMTP_INSECURE_SKIP_VERIFY
	}
}
