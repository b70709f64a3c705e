package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// StatusNew indicates the record was persisted and no notification has been attempted yet.
	StatusNew = "new"
	// StatusNotificationSent indicates the notification email was delivered.
	StatusNotificationSent = "notification_sent"
	// StatusNotificationFailed indicates the notification email could not be delivered.
	StatusNotificationFailed = "notification_failed"
)

// ContactMessage stores a copy of a contact form submission whose admin
// notification has already been delivered.
type ContactMessage struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ReferenceID       string    `gorm:"size:64;uniqueIndex" json:"reference_id"`
	Name              string    `gorm:"size:128;not null" json:"name"`
	Email             string    `gorm:"size:160;not null" json:"email"`
	Subject           string    `gorm:"size:200;not null" json:"subject"`
	Message           string    `gorm:"type:text;not null" json:"message"`
	Status            string    `gorm:"size:32;not null" json:"status"`
	NotificationError string    `gorm:"size:512" json:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewsletterSubscription stores a newsletter signup. Email is the dedup key:
// at most one active subscription per address is created by this service.
type NewsletterSubscription struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ReferenceID       string    `gorm:"size:64;uniqueIndex" json:"reference_id"`
	Email             string    `gorm:"size:160;not null;index" json:"email"`
	Active            bool      `gorm:"not null;default:true" json:"active"`
	Source            string    `gorm:"size:64" json:"source"`
	Status            string    `gorm:"size:32;not null" json:"status"`
	NotificationError string    `gorm:"size:512" json:"notification_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LeadInquiry stores a "learn more" lead capture. The lead is durably
// recorded before any notification is attempted.
type LeadInquiry struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	ReferenceID       string            `gorm:"size:64;uniqueIndex" json:"reference_id"`
	Name              string            `gorm:"size:128;not null" json:"name"`
	Email             string            `gorm:"size:160;not null" json:"email"`
	Mobile            string            `gorm:"size:32;not null" json:"mobile"`
	UserType          string            `gorm:"size:64" json:"user_type"`
	Type              string            `gorm:"size:32;not null;default:learn_more" json:"type"`
	Source            string            `gorm:"size:64" json:"source"`
	Metadata          datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	Status            string            `gorm:"size:32;not null" json:"status"`
	NotificationError string            `gorm:"size:512" json:"notification_error,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

const (
	// LeadTypeLearnMore discriminates inquiries captured by the learn-more popup.
	LeadTypeLearnMore = "learn_more"
	// LeadSourceWebsitePopup marks leads originating from the website popup form.
	LeadSourceWebsitePopup = "website_popup"
	// NewsletterSourceFooter marks subscriptions collected by the site footer form.
	NewsletterSourceFooter = "website-footer"
)
