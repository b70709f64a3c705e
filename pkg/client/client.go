// Package client is a small Go submitter for the public form endpoints,
// used by site tooling and smoke checks. Each form value tracks the render
// lifecycle the site shows a visitor: a submission moves the form to
// pending, a success stores the API's feedback message and clears the
// input fields, and a failure keeps the input so it can be corrected and
// resent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Status is the render state of a form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const genericFailure = "Something went wrong. Please try again later."

// APIError carries the machine code and message returned on a rejected
// submission.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client posts form submissions to the site API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
	}
	return &env, nil
}

// feedback maps a submission error onto the message shown to the visitor.
func feedback(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailure
}

// ContactForm mirrors the contact form on the site: input fields plus the
// state the surrounding page renders.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string

	Status   Status
	Feedback string
}

// SubmitContact posts the contact form. On success the input fields are
// cleared; on failure they are kept.
func (c *Client) SubmitContact(ctx context.Context, form *ContactForm) error {
	form.Status = StatusPending
	form.Feedback = ""

	env, err := c.post(ctx, "/api/forms/contact", map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"subject": form.Subject,
		"message": form.Message,
	})
	if err != nil {
		form.Status = StatusError
		form.Feedback = feedback(err)
		return err
	}

	form.Status = StatusSuccess
	form.Feedback = env.Message
	form.Name, form.Email, form.Subject, form.Message = "", "", "", ""
	return nil
}

// NewsletterForm mirrors the footer signup form.
type NewsletterForm struct {
	Email string

	Status            Status
	Feedback          string
	SubmissionID      string
	AlreadySubscribed bool
}

// SubmitNewsletter posts the newsletter signup. A repeat signup is still a
// success: the form reports AlreadySubscribed and clears the input.
func (c *Client) SubmitNewsletter(ctx context.Context, form *NewsletterForm) error {
	form.Status = StatusPending
	form.Feedback = ""
	form.AlreadySubscribed = false

	env, err := c.post(ctx, "/api/forms/newsletter", map[string]string{"email": form.Email})
	if err != nil {
		form.Status = StatusError
		form.Feedback = feedback(err)
		return err
	}

	var data struct {
		SubmissionID      string `json:"submissionId"`
		AlreadySubscribed bool   `json:"alreadySubscribed"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			form.Status = StatusError
			form.Feedback = genericFailure
			return fmt.Errorf("decode newsletter data: %w", err)
		}
	}

	form.Status = StatusSuccess
	form.Feedback = env.Message
	form.SubmissionID = data.SubmissionID
	form.AlreadySubscribed = data.AlreadySubscribed
	form.Email = ""
	return nil
}

// LeadForm mirrors the learn-more popup form.
type LeadForm struct {
	Name     string
	Email    string
	Mobile   string
	UserType string

	Status       Status
	Feedback     string
	SubmissionID string
}

// SubmitLead posts the learn-more form and records the submission id the
// API assigned.
func (c *Client) SubmitLead(ctx context.Context, form *LeadForm) error {
	form.Status = StatusPending
	form.Feedback = ""

	env, err := c.post(ctx, "/api/forms/learn-more", map[string]string{
		"name":     form.Name,
		"email":    form.Email,
		"mobile":   form.Mobile,
		"userType": form.UserType,
	})
	if err != nil {
		form.Status = StatusError
		form.Feedback = feedback(err)
		return err
	}

	var data struct {
		SubmissionID string `json:"submissionId"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			form.Status = StatusError
			form.Feedback = genericFailure
			return fmt.Errorf("decode lead data: %w", err)
		}
	}

	form.Status = StatusSuccess
	form.Feedback = env.Message
	form.SubmissionID = data.SubmissionID
	form.Name, form.Email, form.Mobile, form.UserType = "", "", "", ""
	return nil
}
