package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/models"
	"github.com/egeorganic/site-api/internal/observability"
	"github.com/egeorganic/site-api/internal/repository"
	"github.com/egeorganic/site-api/pkg/mailer"
)

var (
	// ErrContactSpam indicates the honeypot field was filled.
	ErrContactSpam = errors.New("contact submission flagged as spam")
	// ErrNotifyFailed indicates the admin notification email could not be
	// delivered. For contact messages the email is the delivery, so this
	// failure is surfaced to the caller.
	ErrNotifyFailed = errors.New("notification delivery failed")
)

// ContactService exposes the contact form submission workflow.
type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error)
}

type contactService struct {
	repo       repository.ContactRepository
	sender     mailer.Sender
	validate   *validator.Validate
	emails     *emailRenderer
	events     EventPublisher
	adminEmail string
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewContactService constructs a contact submission service.
func NewContactService(repo repository.ContactRepository, sender mailer.Sender, validate *validator.Validate, events EventPublisher, adminEmail string, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:       repo,
		sender:     sender,
		validate:   validate,
		emails:     newEmailRenderer(),
		events:     events,
		adminEmail: adminEmail,
		logger:     logger.With().Str("component", "contact_service").Logger(),
		tracer:     otel.Tracer("github.com/egeorganic/site-api/internal/service/contact"),
	}
}

// Submit validates the message, delivers the admin notification, and then
// keeps a best-effort copy in the store. The email is the primary side
// effect for this kind: there is no durable record the sender can rely on,
// so a failed delivery fails the whole submission. A failed store write
// afterwards is logged only.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if req.Honeypot != "" {
		span.SetStatus(codes.Error, "honeypot tripped")
		observability.FormSubmissions().WithLabelValues("contact", "spam").Inc()
		return dto.ContactResponse{}, ErrContactSpam
	}

	if err := checkRequest(s.validate, req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.FormSubmissions().WithLabelValues("contact", "invalid").Inc()
		return dto.ContactResponse{}, err
	}

	subject, html, err := s.emails.ContactAdmin(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		span.RecordError(err)
		return dto.ContactResponse{}, err
	}

	email := &mailer.Email{
		To:      []string{s.adminEmail},
		Subject: subject,
		HTML:    html,
		ReplyTo: normalizeEmail(req.Email),
	}
	if err := s.sender.Send(ctx, email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification failed")
		observability.EmailDeliveries().WithLabelValues("contact_admin", "error").Inc()
		observability.FormSubmissions().WithLabelValues("contact", "notify_failed").Inc()
		s.logger.Error().Err(err).Str("email", maskEmailAddress(req.Email)).Msg("contact notification failed")
		return dto.ContactResponse{}, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	observability.EmailDeliveries().WithLabelValues("contact_admin", "sent").Inc()

	message := models.ContactMessage{
		ReferenceID: uuid.New().String(),
		Name:        req.Name,
		Email:       normalizeEmail(req.Email),
		Subject:     req.Subject,
		Message:     req.Message,
		Status:      models.StatusNotificationSent,
	}
	if err := s.repo.Create(ctx, &message); err != nil {
		// Secondary side effect for this kind: the admin already has the
		// message in their inbox, so a failed copy is logged, not surfaced.
		span.RecordError(err)
		s.logger.Warn().Err(err).Str("reference_id", message.ReferenceID).Msg("failed to store contact message copy")
	} else {
		s.events.SubmissionCreated(SubmissionEvent{
			Kind:        "contact",
			ReferenceID: message.ReferenceID,
			Email:       message.Email,
			CreatedAt:   message.CreatedAt,
		})
	}

	observability.FormSubmissions().WithLabelValues("contact", "sent").Inc()
	s.logger.Info().
		Str("reference_id", message.ReferenceID).
		Str("email", maskEmailAddress(req.Email)).
		Msg("contact submission processed")
	span.SetStatus(codes.Ok, "delivered")

	return dto.ContactResponse{Timestamp: time.Now().UTC()}, nil
}
