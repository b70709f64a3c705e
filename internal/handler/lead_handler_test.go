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

func newLeadApp(svc service.LeadService) *fiber.App {
	app := fiber.New()
	NewLeadHandler(svc, testLogger()).Register(app.Group("/api/forms/learn-more"))
	return app
}

func TestLeadSubmitSuccess(t *testing.T) {
	var captured dto.LeadRequest
	app := newLeadApp(&leadServiceMock{
		submit: func(_ context.Context, req dto.LeadRequest) (dto.LeadResponse, error) {
			captured = req
			return dto.LeadResponse{SubmissionID: "ref-9"}, nil
		},
	})

	resp := postJSON(t, app, "/api/forms/learn-more", `{"name":"Ravi","email":"ravi@example.com","mobile":"+919900112233","userType":"farmer"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.True(t, body.Success)
	require.Equal(t, "Thank you for your interest! We will contact you soon.", body.Message)
	require.Equal(t, "ref-9", body.Data["submissionId"])
	require.Equal(t, "farmer", captured.UserType)
}

func TestLeadSubmitValidationRejection(t *testing.T) {
	app := newLeadApp(&leadServiceMock{
		submit: func(context.Context, dto.LeadRequest) (dto.LeadResponse, error) {
			return dto.LeadResponse{}, &service.InvalidInputError{Message: "Missing required fields: mobile"}
		},
	})

	resp := postJSON(t, app, "/api/forms/learn-more", `{"name":"Ravi","email":"ravi@example.com"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.False(t, body.Success)
	require.Equal(t, utils.CodeInvalidArgument, body.Code)
	require.Equal(t, "Missing required fields: mobile", body.Message)
}

func TestLeadSubmitStoreFailure(t *testing.T) {
	app := newLeadApp(&leadServiceMock{
		submit: func(context.Context, dto.LeadRequest) (dto.LeadResponse, error) {
			return dto.LeadResponse{}, context.DeadlineExceeded
		},
	})

	resp := postJSON(t, app, "/api/forms/learn-more", `{"name":"Ravi","email":"ravi@example.com","mobile":"+919900112233"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeResponse(t, resp)
	require.False(t, body.Success)
	require.Equal(t, utils.CodeInternal, body.Code)
	require.Equal(t, "Failed to process form submission", body.Message)
}
