package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/models"
)

func newNewsletterFixture(sender *recordingSender, repo *newsletterRepoStub) NewsletterService {
	return NewNewsletterService(repo, sender, NewValidator(), &recordingEvents{}, testLogger())
}

func TestNewsletterSubscribeSuccess(t *testing.T) {
	sender := &recordingSender{}
	repo := &newsletterRepoStub{}
	svc := newNewsletterFixture(sender, repo)

	resp, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "Asha@Example.com"})
	require.NoError(t, err)
	require.False(t, resp.AlreadySubscribed)
	require.NotEmpty(t, resp.SubmissionID)
	require.Equal(t, "asha@example.com", resp.Email)

	require.Len(t, repo.created, 1)
	require.True(t, repo.created[0].Active)
	require.Equal(t, models.NewsletterSourceFooter, repo.created[0].Source)

	require.Len(t, sender.sent, 1)
	require.Equal(t, []string{"asha@example.com"}, sender.sent[0].To)
	require.Equal(t, models.StatusNotificationSent, repo.lastStatus)
}

func TestNewsletterSubscribeDedup(t *testing.T) {
	sender := &recordingSender{}
	repo := &newsletterRepoStub{}
	svc := newNewsletterFixture(sender, repo)

	first, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "asha@example.com"})
	require.NoError(t, err)

	second, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "asha@example.com"})
	require.NoError(t, err)
	require.True(t, second.AlreadySubscribed)
	require.Equal(t, first.SubmissionID, second.SubmissionID)

	// Exactly one stored record and one welcome email.
	require.Len(t, repo.created, 1)
	require.Len(t, sender.sent, 1)
}

func TestNewsletterSubscribeInvalidEmail(t *testing.T) {
	sender := &recordingSender{}
	repo := &newsletterRepoStub{}
	svc := newNewsletterFixture(sender, repo)

	_, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "not-an-email"})

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Empty(t, repo.created)
	require.Empty(t, sender.sent)
}

func TestNewsletterWelcomeFailureKeepsSubscription(t *testing.T) {
	sender := &recordingSender{failAll: true}
	repo := &newsletterRepoStub{}
	svc := newNewsletterFixture(sender, repo)

	resp, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "asha@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SubmissionID)

	require.Len(t, repo.created, 1)
	require.Equal(t, models.StatusNotificationFailed, repo.lastStatus)
	require.NotEmpty(t, repo.lastNotifErr)
}

func TestNewsletterDedupLookupFailureIsSurfaced(t *testing.T) {
	sender := &recordingSender{}
	repo := &newsletterRepoStub{findErr: context.DeadlineExceeded}
	svc := newNewsletterFixture(sender, repo)

	_, err := svc.Subscribe(context.Background(), dto.NewsletterRequest{Email: "asha@example.com"})
	require.Error(t, err)
	require.Empty(t, repo.created)
	require.Empty(t, sender.sent)
}
