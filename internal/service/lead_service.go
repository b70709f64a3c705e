package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/models"
	"github.com/egeorganic/site-api/internal/observability"
	"github.com/egeorganic/site-api/internal/repository"
	"github.com/egeorganic/site-api/pkg/mailer"
)

// LeadService exposes the learn-more lead capture workflow.
type LeadService interface {
	Submit(ctx context.Context, req dto.LeadRequest) (dto.LeadResponse, error)
}

type leadService struct {
	repo       repository.LeadRepository
	sender     mailer.Sender
	validate   *validator.Validate
	emails     *emailRenderer
	events     EventPublisher
	adminEmail string
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewLeadService constructs a lead capture service.
func NewLeadService(repo repository.LeadRepository, sender mailer.Sender, validate *validator.Validate, events EventPublisher, adminEmail string, logger zerolog.Logger) LeadService {
	return &leadService{
		repo:       repo,
		sender:     sender,
		validate:   validate,
		emails:     newEmailRenderer(),
		events:     events,
		adminEmail: adminEmail,
		logger:     logger.With().Str("component", "lead_service").Logger(),
		tracer:     otel.Tracer("github.com/egeorganic/site-api/internal/service/lead"),
	}
}

// Submit validates and durably records the lead, then attempts the admin
// notification and the user confirmation emails independently. Persistence
// is the hard requirement; once the lead is stored the submission succeeds
// regardless of email outcome, since an operator can always follow up from
// the store.
func (s *leadService) Submit(ctx context.Context, req dto.LeadRequest) (dto.LeadResponse, error) {
	ctx, span := s.tracer.Start(ctx, "lead.submit")
	defer span.End()

	if err := checkRequest(s.validate, req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		observability.FormSubmissions().WithLabelValues("lead", "invalid").Inc()
		return dto.LeadResponse{}, err
	}

	lead := models.LeadInquiry{
		ReferenceID: uuid.New().String(),
		Name:        req.Name,
		Email:       normalizeEmail(req.Email),
		Mobile:      strings.TrimSpace(req.Mobile),
		UserType:    req.UserType,
		Type:        models.LeadTypeLearnMore,
		Source:      models.LeadSourceWebsitePopup,
		Metadata:    leadMetadata(req.Metadata),
		Status:      models.StatusNew,
	}
	if err := s.repo.Create(ctx, &lead); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.FormSubmissions().WithLabelValues("lead", "error").Inc()
		return dto.LeadResponse{}, fmt.Errorf("persist lead inquiry: %w", err)
	}

	s.events.SubmissionCreated(SubmissionEvent{
		Kind:        "lead",
		ReferenceID: lead.ReferenceID,
		Email:       lead.Email,
		CreatedAt:   lead.CreatedAt,
	})

	s.notify(ctx, lead)

	observability.FormSubmissions().WithLabelValues("lead", "captured").Inc()
	s.logger.Info().
		Str("reference_id", lead.ReferenceID).
		Str("email", maskEmailAddress(lead.Email)).
		Msg("lead inquiry captured")
	span.SetStatus(codes.Ok, "captured")

	return dto.LeadResponse{SubmissionID: lead.ReferenceID}, nil
}

// notify sends the admin notification and the user confirmation, each
// best-effort and independent of the other, then records the outcome.
func (s *leadService) notify(ctx context.Context, lead models.LeadInquiry) {
	var failures []string

	if subject, html, err := s.emails.LeadAdmin(lead); err != nil {
		s.logger.Warn().Err(err).Str("reference_id", lead.ReferenceID).Msg("failed to render lead admin email")
		failures = append(failures, "admin: "+err.Error())
	} else if err := s.sender.Send(ctx, &mailer.Email{To: []string{s.adminEmail}, Subject: subject, HTML: html, ReplyTo: lead.Email}); err != nil {
		observability.EmailDeliveries().WithLabelValues("lead_admin", "error").Inc()
		s.logger.Warn().Err(err).Str("reference_id", lead.ReferenceID).Msg("lead admin notification failed, lead kept")
		failures = append(failures, "admin: "+err.Error())
	} else {
		observability.EmailDeliveries().WithLabelValues("lead_admin", "sent").Inc()
	}

	if subject, html, err := s.emails.LeadConfirmation(lead, s.adminEmail); err != nil {
		s.logger.Warn().Err(err).Str("reference_id", lead.ReferenceID).Msg("failed to render lead confirmation email")
		failures = append(failures, "confirmation: "+err.Error())
	} else if err := s.sender.Send(ctx, &mailer.Email{To: []string{lead.Email}, Subject: subject, HTML: html}); err != nil {
		observability.EmailDeliveries().WithLabelValues("lead_confirmation", "error").Inc()
		s.logger.Warn().Err(err).
			Str("reference_id", lead.ReferenceID).
			Str("email", maskEmailAddress(lead.Email)).
			Msg("lead confirmation email failed, lead kept")
		failures = append(failures, "confirmation: "+err.Error())
	} else {
		observability.EmailDeliveries().WithLabelValues("lead_confirmation", "sent").Inc()
	}

	status := models.StatusNotificationSent
	notifyErr := ""
	if len(failures) > 0 {
		status = models.StatusNotificationFailed
		notifyErr = strings.Join(failures, "; ")
	}

	if err := s.repo.MarkNotified(ctx, lead.ID, status, notifyErr); err != nil {
		s.logger.Warn().Err(err).Str("reference_id", lead.ReferenceID).Msg("failed to record notification outcome")
	}
}

func leadMetadata(metadata map[string]string) datatypes.JSONMap {
	if len(metadata) == 0 {
		return nil
	}
	out := make(datatypes.JSONMap, len(metadata))
	for key, value := range metadata {
		out[key] = value
	}
	return out
}
