package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/egeorganic/site-api/internal/dto"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// envelope mirrors the wire response for assertions.
type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Data    map[string]interface{} `json:"data"`
}

func decodeResponse(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

type contactServiceMock struct {
	submit func(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error)
}

func (m *contactServiceMock) Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error) {
	return m.submit(ctx, req)
}

type newsletterServiceMock struct {
	subscribe func(ctx context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error)
}

func (m *newsletterServiceMock) Subscribe(ctx context.Context, req dto.NewsletterRequest) (dto.NewsletterResponse, error) {
	return m.subscribe(ctx, req)
}

type leadServiceMock struct {
	submit func(ctx context.Context, req dto.LeadRequest) (dto.LeadResponse, error)
}

func (m *leadServiceMock) Submit(ctx context.Context, req dto.LeadRequest) (dto.LeadResponse, error) {
	return m.submit(ctx, req)
}

type adminServiceMock struct {
	listContacts   func(ctx context.Context, req dto.AdminListRequest) (dto.AdminContactListResponse, error)
	getContact     func(ctx context.Context, id uint) (dto.AdminContactItem, error)
	listNewsletter func(ctx context.Context, req dto.AdminListRequest) (dto.AdminNewsletterListResponse, error)
	listLeads      func(ctx context.Context, req dto.AdminListRequest) (dto.AdminLeadListResponse, error)
	getLead        func(ctx context.Context, id uint) (dto.AdminLeadItem, error)
	stats          func(ctx context.Context) (dto.AdminStatsResponse, error)
}

func (m *adminServiceMock) ListContacts(ctx context.Context, req dto.AdminListRequest) (dto.AdminContactListResponse, error) {
	return m.listContacts(ctx, req)
}

func (m *adminServiceMock) GetContact(ctx context.Context, id uint) (dto.AdminContactItem, error) {
	return m.getContact(ctx, id)
}

func (m *adminServiceMock) ListNewsletter(ctx context.Context, req dto.AdminListRequest) (dto.AdminNewsletterListResponse, error) {
	return m.listNewsletter(ctx, req)
}

func (m *adminServiceMock) ListLeads(ctx context.Context, req dto.AdminListRequest) (dto.AdminLeadListResponse, error) {
	return m.listLeads(ctx, req)
}

func (m *adminServiceMock) GetLead(ctx context.Context, id uint) (dto.AdminLeadItem, error) {
	return m.getLead(ctx, id)
}

func (m *adminServiceMock) Stats(ctx context.Context) (dto.AdminStatsResponse, error) {
	return m.stats(ctx)
}
