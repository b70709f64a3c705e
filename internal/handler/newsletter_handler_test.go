package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

func newNewsletterApp(svc service.NewsletterService) *fiber.App {
	app := fiber.New()
	NewNewsletterHandler(svc, testLogger()).Register(app.Group("/api/forms/newsletter"))
	return app
}

func TestNewsletterSubscribeSuccess(t *testing.T) {
	app := newNewsletterApp(&newsletterServiceMock{
		subscribe: func(_ context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error) {
			return dto.NewsletterResponse{Email: req.Email, SubmissionID: "ref-1"}, nil
		},
	})

	resp := postJSON(t, app, "/api/forms/newsletter", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.True(t, body.Success)
	require.Equal(t, "Thank you for subscribing to our newsletter!", body.Message)
	require.Equal(t, "ref-1", body.Data["submissionId"])
	_, present := body.Data["alreadySubscribed"]
	require.False(t, present, "alreadySubscribed is omitted for new subscriptions")
}

func TestNewsletterSubscribeAlreadySubscribed(t *testing.T) {
	app := newNewsletterApp(&newsletterServiceMock{
		subscribe: func(_ context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error) {
			return dto.NewsletterResponse{Email: req.Email, SubmissionID: "ref-1", AlreadySubscribed: true}, nil
		},
	})

	resp := postJSON(t, app, "/api/forms/newsletter", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.True(t, body.Success)
	require.Equal(t, "You are already subscribed to our newsletter!", body.Message)
	require.Equal(t, true, body.Data["alreadySubscribed"])
}

func TestNewsletterSubscribeInvalidEmail(t *testing.T) {
	app := newNewsletterApp(&newsletterServiceMock{
		subscribe: func(context.Context, dto.NewsletterRequest) (dto.NewsletterResponse, error) {
			return dto.NewsletterResponse{}, &service.InvalidInputError{Message: "Please provide a valid email address"}
		},
	})

	resp := postJSON(t, app, "/api/forms/newsletter", `{"email":"broken"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.False(t, body.Success)
	require.Equal(t, utils.CodeInvalidArgument, body.Code)
	require.Equal(t, "Please provide a valid email address", body.Message)
}

func TestNewsletterSubscribeStoreFailure(t *testing.T) {
	app := newNewsletterApp(&newsletterServiceMock{
		subscribe: func(context.Context, dto.NewsletterRequest) (dto.NewsletterResponse, error) {
			return dto.NewsletterResponse{}, context.DeadlineExceeded
		},
	})

	resp := postJSON(t, app, "/api/forms/newsletter", `{"email":"asha@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.False(t, body.Success)
	require.Equal(t, utils.CodeInternal, body.Code)
}
