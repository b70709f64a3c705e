package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/models"
	"github.com/egeorganic/site-api/internal/repository"
	"github.com/egeorganic/site-api/pkg/mailer"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

type sentEmail struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// recordingSender captures every email handed to it. Addresses listed in
// failFor produce a send error instead.
type recordingSender struct {
	sent    []sentEmail
	failFor map[string]bool
	failAll bool
}

func (s *recordingSender) Send(_ context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	if s.failAll || (len(email.To) > 0 && s.failFor[email.To[0]]) {
		return mailer.ErrSendFailed
	}
	s.sent = append(s.sent, sentEmail{
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
		ReplyTo: email.ReplyTo,
	})
	return nil
}

type recordedEvent = SubmissionEvent

type recordingEvents struct {
	events []recordedEvent
}

func (e *recordingEvents) SubmissionCreated(event SubmissionEvent) {
	e.events = append(e.events, event)
}

type contactRepoStub struct {
	created   []models.ContactMessage
	createErr error
}

func (s *contactRepoStub) Create(_ context.Context, message *models.ContactMessage) error {
	if s.createErr != nil {
		return s.createErr
	}
	message.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *message)
	return nil
}

func (s *contactRepoStub) MarkNotified(context.Context, uint, string, string) error { return nil }

func (s *contactRepoStub) List(context.Context, repository.SubmissionFilter) ([]models.ContactMessage, int64, error) {
	return s.created, int64(len(s.created)), nil
}

func (s *contactRepoStub) GetByID(context.Context, uint) (models.ContactMessage, error) {
	return models.ContactMessage{}, nil
}

func (s *contactRepoStub) CountByStatus(context.Context) (repository.StatusCounts, error) {
	return repository.StatusCounts{Total: int64(len(s.created))}, nil
}

type newsletterRepoStub struct {
	created      []models.NewsletterSubscription
	existing     *models.NewsletterSubscription
	createErr    error
	findErr      error
	lastStatus   string
	lastNotified uint
	lastNotifErr string
}

func (s *newsletterRepoStub) Create(_ context.Context, subscription *models.NewsletterSubscription) error {
	if s.createErr != nil {
		return s.createErr
	}
	subscription.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *subscription)
	return nil
}

func (s *newsletterRepoStub) FindActiveByEmail(_ context.Context, email string) (*models.NewsletterSubscription, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.existing != nil && s.existing.Email == email {
		return s.existing, nil
	}
	for i := range s.created {
		if s.created[i].Email == email && s.created[i].Active {
			return &s.created[i], nil
		}
	}
	return nil, nil
}

func (s *newsletterRepoStub) MarkNotified(_ context.Context, id uint, status string, notifyErr string) error {
	s.lastNotified = id
	s.lastStatus = status
	s.lastNotifErr = notifyErr
	return nil
}

func (s *newsletterRepoStub) List(context.Context, repository.SubmissionFilter) ([]models.NewsletterSubscription, int64, error) {
	return s.created, int64(len(s.created)), nil
}

func (s *newsletterRepoStub) GetByID(context.Context, uint) (models.NewsletterSubscription, error) {
	return models.NewsletterSubscription{}, nil
}

func (s *newsletterRepoStub) CountByStatus(context.Context) (repository.StatusCounts, error) {
	return repository.StatusCounts{Total: int64(len(s.created))}, nil
}

type leadRepoStub struct {
	created      []models.LeadInquiry
	createErr    error
	lastStatus   string
	lastNotifErr string
}

func (s *leadRepoStub) Create(_ context.Context, lead *models.LeadInquiry) error {
	if s.createErr != nil {
		return s.createErr
	}
	lead.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *lead)
	return nil
}

func (s *leadRepoStub) MarkNotified(_ context.Context, _ uint, status string, notifyErr string) error {
	s.lastStatus = status
	s.lastNotifErr = notifyErr
	return nil
}

func (s *leadRepoStub) List(context.Context, repository.SubmissionFilter) ([]models.LeadInquiry, int64, error) {
	return s.created, int64(len(s.created)), nil
}

func (s *leadRepoStub) GetByID(context.Context, uint) (models.LeadInquiry, error) {
	return models.LeadInquiry{}, nil
}

func (s *leadRepoStub) CountByStatus(context.Context) (repository.StatusCounts, error) {
	return repository.StatusCounts{Total: int64(len(s.created))}, nil
}
