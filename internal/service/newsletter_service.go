package service

import (
	"context"
	"fmt"

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

// NewsletterService exposes the newsletter signup workflow.
type NewsletterService interface {
	Subscribe(ctx context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error)
}

type newsletterService struct {
	repo     repository.NewsletterRepository
	sender   mailer.Sender
	validate *validator.Validate
	emails   *emailRenderer
	events   EventPublisher
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// NewNewsletterService constructs a newsletter signup service.
func NewNewsletterService(repo repository.NewsletterRepository, sender mailer.Sender, validate *validator.Validate, events EventPublisher, logger zerolog.Logger) NewsletterService {
	return &newsletterService{
		repo:     repo,
		sender:   sender,
		validate: validate,
		emails:   newEmailRenderer(),
		events:   events,
		logger:   logger.With().Str("component", "newsletter_service").Logger(),
		tracer:   otel.Tracer("github.com/egeorganic/site-api/internal/service/newsletter"),
	}
}

// Subscribe validates the address, skips creation when an active
// subscription already exists, and otherwise persists the signup before
// attempting a best-effort welcome email. Persistence is the primary side
// effect: a failed welcome email leaves the subscription successful.
//
// The dedup check is read-then-write; two concurrent signups for the same
// new address can both pass it and create duplicates. Accepted trade-off:
// enforce a unique index at the store if exact-once is ever required.
func (s *newsletterService) Subscribe(ctx context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error) {
	ctx, span := s.tracer.Start(ctx, "newsletter.subscribe")
	defer span.End()

	if err := checkRequest(s.validate, req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.FormSubmissions().WithLabelValues("newsletter", "invalid").Inc()
		return dto.NewsletterResponse{}, err
	}

	address := normalizeEmail(req.Email)

	existing, err := s.repo.FindActiveByEmail(ctx, address)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dedup lookup failed")
		observability.FormSubmissions().WithLabelValues("newsletter", "error").Inc()
		return dto.NewsletterResponse{}, fmt.Errorf("newsletter dedup lookup: %w", err)
	}
	if existing != nil {
		observability.FormSubmissions().WithLabelValues("newsletter", "duplicate").Inc()
		s.logger.Info().Str("email", maskEmailAddress(address)).Msg("newsletter address already subscribed")
		span.SetStatus(codes.Ok, "already subscribed")
		return dto.NewsletterResponse{
			Email:             address,
			SubmissionID:      existing.ReferenceID,
			AlreadySubscribed: true,
		}, nil
	}

	subscription := models.NewsletterSubscription{
		ReferenceID: uuid.New().String(),
		Email:       address,
		Active:      true,
		Source:      models.NewsletterSourceFooter,
		Status:      models.StatusNew,
	}
	if err := s.repo.Create(ctx, &subscription); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.FormSubmissions().WithLabelValues("newsletter", "error").Inc()
		return dto.NewsletterResponse{}, fmt.Errorf("persist newsletter subscription: %w", err)
	}

	s.events.SubmissionCreated(SubmissionEvent{
		Kind:        "newsletter",
		ReferenceID: subscription.ReferenceID,
		Email:       subscription.Email,
		CreatedAt:   subscription.CreatedAt,
	})

	s.sendWelcome(ctx, subscription)

	observability.FormSubmissions().WithLabelValues("newsletter", "subscribed").Inc()
	s.logger.Info().
		Str("reference_id", subscription.ReferenceID).
		Str("email", maskEmailAddress(address)).
		Msg("newsletter subscription recorded")
	span.SetStatus(codes.Ok, "subscribed")

	return dto.NewsletterResponse{
		Email:        address,
		SubmissionID: subscription.ReferenceID,
	}, nil
}

// sendWelcome delivers the welcome email and records the notification
// outcome. Both steps are best-effort.
func (s *newsletterService) sendWelcome(ctx context.Context, subscription models.NewsletterSubscription) {
	subject, html, err := s.emails.NewsletterWelcome(subscription.Email)
	if err != nil {
		s.logger.Warn().Err(err).Str("reference_id", subscription.ReferenceID).Msg("failed to render welcome email")
		return
	}

	sendErr := s.sender.Send(ctx, &mailer.Email{
		To:      []string{subscription.Email},
		Subject: subject,
		HTML:    html,
	})

	status := models.StatusNotificationSent
	notifyErr := ""
	if sendErr != nil {
		status = models.StatusNotificationFailed
		notifyErr = sendErr.Error()
		observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "error").Inc()
		s.logger.Warn().Err(sendErr).
			Str("reference_id", subscription.ReferenceID).
			Str("email", maskEmailAddress(subscription.Email)).
			Msg("welcome email failed, subscription kept")
	} else {
		observability.EmailDeliveries().WithLabelValues("newsletter_welcome", "sent").Inc()
	}

	if err := s.repo.MarkNotified(ctx, subscription.ID, status, notifyErr); err != nil {
		s.logger.Warn().Err(err).Str("reference_id", subscription.ReferenceID).Msg("failed to record notification outcome")
	}
}
