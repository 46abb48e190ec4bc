package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"contact-form-backend/internal/domain"
	"contact-form-backend/pkg/logger"
	"contact-form-backend/pkg/metrics"
	"contact-form-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// timestampLayout matches the ISO-8601 form browsers produce (millisecond precision, UTC)
const timestampLayout = "2006-01-02T15:04:05.000Z"

type contactUsecase struct {
	mailer   domain.Mailer
	store    domain.FallbackStore
	validate *validator.Validate
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.Mailer, store domain.FallbackStore, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		store:    store,
		validate: validate,
		now:      time.Now,
	}
}

// Submit validates the contact request, emails it and saves it locally if the email fails
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResult, error) {
	logger.Log.Info("Received contact form submission")

	if err := uc.validateRequest(req); err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	// Any failure from here on goes to the fallback store
	sendErr := uc.send(ctx, req)

	if sendErr == nil {
		logger.Log.Info("Email sent successfully", "files", len(req.UploadedFiles))
		metrics.Submissions.WithLabelValues(metrics.OutcomeEmailed).Inc()
		return &domain.ContactResult{
			Success:    true,
			Name:       string(req.FullName),
			Email:      string(req.Email),
			FilesCount: len(req.UploadedFiles),
			Timestamp:  uc.timestamp(),
		}, nil
	}

	transportErr := &domain.TransportError{Err: sendErr}
	logger.Log.Error("Contact form email failed", "error", transportErr)

	id, err := uc.saveFallback(ctx, req, transportErr)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, err
	}

	logger.Log.Warn("Contact form saved to fallback store", "submission_id", id)
	metrics.Submissions.WithLabelValues(metrics.OutcomeFallback).Inc()
	return &domain.ContactResult{
		Success:      false,
		Name:         string(req.FullName),
		Email:        string(req.Email),
		FilesCount:   len(req.UploadedFiles),
		Timestamp:    uc.timestamp(),
		SubmissionID: id,
	}, nil
}

func (uc *contactUsecase) send(ctx context.Context, req *domain.ContactRequest) error {
	msg, err := composeContactEmail(req)
	if err != nil {
		return fmt.Errorf("compose contact email: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.EmailSendDuration.Observe(time.Since(start).Seconds())
	}()
	return uc.mailer.Send(ctx, msg)
}

// validateRequest only checks that the required fields are present
func (uc *contactUsecase) validateRequest(req *domain.ContactRequest) error {
	if req == nil {
		return domain.ErrMissingRequiredFields
	}
	if err := uc.validate.Struct(req); err != nil {
		logger.Log.Debug("Contact form rejected", "missing", validation.MissingFields(err))
		return domain.ErrMissingRequiredFields
	}
	return nil
}

func (uc *contactUsecase) saveFallback(ctx context.Context, req *domain.ContactRequest, sendErr *domain.TransportError) (string, error) {
	formData := req.Raw
	if len(formData) == 0 {
		b, err := json.Marshal(req)
		if err != nil {
			return "", &domain.FallbackPersistenceError{Err: err}
		}
		formData = b
	}

	record := &domain.FallbackRecord{
		Timestamp: uc.timestamp(),
		FormData:  formData,
		Error:     sendErr.Err.Error(),
	}

	// The request may already be cancelled; the record is still worth writing
	id, err := uc.store.Save(context.WithoutCancel(ctx), record)
	if err != nil {
		return "", &domain.FallbackPersistenceError{Err: err}
	}
	return id, nil
}

func (uc *contactUsecase) timestamp() string {
	return uc.now().UTC().Format(timestampLayout)
}
