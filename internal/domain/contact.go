package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	FullName      FlexibleString `json:"fullName" validate:"required"`
	Email         FlexibleString `json:"email" validate:"required"`
	Phone         FlexibleString `json:"phone" validate:"required"`
	Service       FlexibleString `json:"service" validate:"required"`
	Message       FlexibleString `json:"message" validate:"required"`
	ContactMethod FlexibleString `json:"contactMethod" validate:"required"`
	CompanyName   FlexibleString `json:"companyName,omitempty"`
	NumEmployees  FlexibleString `json:"numEmployees,omitempty"`
	Interests     Interests      `json:"interests,omitempty"`
	UploadedFiles FileURLs       `json:"uploadedFiles,omitempty"`

	// Raw holds the request body exactly as received, persisted on fallback.
	Raw json.RawMessage `json:"-"`
}

// ContactResult is the outcome of a submission.
// Success is false when the email failed and the form went to the fallback store.
type ContactResult struct {
	Success      bool
	Name         string
	Email        string
	FilesCount   int
	Timestamp    string
	SubmissionID string
}

// ContactEmail is a composed notification ready for the mail transport
type ContactEmail struct {
	Subject  string
	ReplyTo  string
	TextBody string
	HTMLBody string
}

// FallbackRecord is written to disk when the notification email could not be sent
type FallbackRecord struct {
	Timestamp string          `json:"timestamp"`
	FormData  json.RawMessage `json:"formData"`
	Error     string          `json:"error"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates the form, emails it and falls back to local storage on send failure
	Submit(ctx context.Context, req *ContactRequest) (*ContactResult, error)
}

// Mailer delivers a composed contact email to the configured recipients
type Mailer interface {
	Send(ctx context.Context, msg *ContactEmail) error
}

// FallbackStore persists failed submissions and returns the stored file id
type FallbackStore interface {
	Save(ctx context.Context, record *FallbackRecord) (string, error)
}

var ErrMissingRequiredFields = errors.New("All required fields must be filled")

const (
	MsgSubmitted    = "Contact form submitted successfully"
	MsgSavedLocally = "Failed to send email. Form saved locally."
	MsgInvalidBody  = "Invalid request body"
)

// TransportError wraps any failure reported by the mail transport
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mail transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FallbackPersistenceError is returned when the fallback record itself could not be written
type FallbackPersistenceError struct {
	Err error
}

func (e *FallbackPersistenceError) Error() string {
	return fmt.Sprintf("fallback persistence: %v", e.Err)
}

func (e *FallbackPersistenceError) Unwrap() error {
	return e.Err
}
