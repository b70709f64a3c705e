package service

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// SubmissionEvent is published whenever a submission is durably recorded.
// Consumers (ops tooling, CRM sync) subscribe on "<base>.submissions.created".
type SubmissionEvent struct {
	Kind        string    `json:"kind"`
	ReferenceID string    `json:"reference_id"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventPublisher emits submission lifecycle events. Publishing is strictly
// best-effort: a failed publish is logged and never affects the request.
type EventPublisher interface {
	SubmissionCreated(event SubmissionEvent)
}

type natsEventPublisher struct {
	conn    *nats.Conn
	subject string
	logger  zerolog.Logger
}

// NewEventPublisher constructs a NATS-backed publisher. A nil connection
// yields a publisher that silently drops events, so event delivery stays
// optional infrastructure.
func NewEventPublisher(conn *nats.Conn, subjectBase string, logger zerolog.Logger) EventPublisher {
	subject := "site.submissions.created"
	if subjectBase != "" {
		subject = subjectBase + ".submissions.created"
	}

	return &natsEventPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger.With().Str("component", "event_publisher").Logger(),
	}
}

func (p *natsEventPublisher) SubmissionCreated(event SubmissionEvent) {
	if p.conn == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn().Err(err).Str("kind", event.Kind).Msg("failed to encode submission event")
		return
	}

	if err := p.conn.Publish(p.subject, payload); err != nil {
		p.logger.Warn().Err(err).
			Str("kind", event.Kind).
			Str("reference_id", event.ReferenceID).
			Msg("failed to publish submission event")
	}
}
