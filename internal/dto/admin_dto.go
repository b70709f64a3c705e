package dto

import "time"

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// AdminListRequest carries shared listing filters for admin endpoints.
type AdminListRequest struct {
	Page     int
	PageSize int
	Status   string
	Search   string
	Sort     string
}

// AdminContactItem is the operator view of a stored contact message.
type AdminContactItem struct {
	ID                uint      `json:"id"`
	ReferenceID       string    `json:"reference_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Subject           string    `json:"subject"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	NotificationError string    `json:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// AdminNewsletterItem is the operator view of a newsletter subscription.
type AdminNewsletterItem struct {
	ID          uint      `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Email       string    `json:"email"`
	Active      bool      `json:"active"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminLeadItem is the operator view of a captured lead.
type AdminLeadItem struct {
	ID                uint      `json:"id"`
	ReferenceID       string    `json:"reference_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Mobile            string    `json:"mobile"`
	UserType          string    `json:"user_type"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	NotificationError string    `json:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// AdminContactListResponse contains paginated contact messages.
type AdminContactListResponse struct {
	Items      []AdminContactItem `json:"items"`
	Pagination PaginationMeta     `json:"pagination"`
}

// AdminNewsletterListResponse contains paginated newsletter subscriptions.
type AdminNewsletterListResponse struct {
	Items      []AdminNewsletterItem `json:"items"`
	Pagination PaginationMeta        `json:"pagination"`
}

// AdminLeadListResponse contains paginated lead inquiries.
type AdminLeadListResponse struct {
	Items      []AdminLeadItem `json:"items"`
	Pagination PaginationMeta  `json:"pagination"`
}

// AdminStatsResponse summarises stored submissions for the operator dashboard.
type AdminStatsResponse struct {
	Contacts    KindStats `json:"contacts"`
	Newsletter  KindStats `json:"newsletter"`
	Leads       KindStats `json:"leads"`
	GeneratedAt time.Time `json:"generated_at"`
	CacheHit    bool      `json:"cache_hit"`
}

// KindStats counts submissions of one kind by notification outcome.
type KindStats struct {
	Total        int64 `json:"total"`
	Notified     int64 `json:"notified"`
	NotifyFailed int64 `json:"notify_failed"`
}
