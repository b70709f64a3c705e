package dto

import "time"

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,emailshape,max=160"`
	Subject  string `json:"subject" validate:"required,max=200"`
	Message  string `json:"message" validate:"required,max=5000"`
	Honeypot string `json:"_note"`
}

// ContactResponse communicates the outcome of a contact submission.
type ContactResponse struct {
	Timestamp time.Time `json:"timestamp"`
}

// NewsletterRequest defines the payload for the newsletter signup endpoint.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,emailshape,max=160"`
}

// NewsletterResponse communicates the outcome of a newsletter signup.
// AlreadySubscribed is true when an active subscription with the same
// email existed and no new record was created.
type NewsletterResponse struct {
	Email             string `json:"email"`
	SubmissionID      string `json:"submissionId,omitempty"`
	AlreadySubscribed bool   `json:"alreadySubscribed,omitempty"`
}

// LeadRequest defines the payload for the learn-more lead capture endpoint.
type LeadRequest struct {
	Name     string            `json:"name" validate:"required,max=120"`
	Email    string            `json:"email" validate:"required,emailshape,max=160"`
	Mobile   string            `json:"mobile" validate:"required,max=32"`
	UserType string            `json:"userType" validate:"omitempty,max=64"`
	Metadata map[string]string `json:"metadata" validate:"omitempty,max=16"`
}

// LeadResponse communicates the outcome of a lead capture. SubmissionID is
// always present on success; the lead is recorded before any email is sent.
type LeadResponse struct {
	SubmissionID string `json:"submissionId"`
}
