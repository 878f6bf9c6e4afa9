package kafka

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

// EventType of every message EventPublisher emits.
const EventType = "payment.recovery.outcome"

// OutcomeEvent is the message body published for one Handle call.
type OutcomeEvent struct {
	Type       string           `json:"type"`
	OccurredAt time.Time        `json:"occurred_at"`
	Outcome    recovery.Outcome `json:"outcome"`
}

// Header names set on every outcome event.
const (
	HeaderEventType = "event-type"
	HeaderHandleID  = "handle-id"
	HeaderResult    = "recovery-result"
)

// EventPublisher publishes recovery outcomes, keyed by session ID so that
// one session's events stay ordered within a partition.
type EventPublisher struct {
	producer *Producer
	topic    string
}

// NewEventPublisher returns a publisher writing to topic (empty: the producer's topic).
func NewEventPublisher(producer *Producer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

// PublishOutcome sends one outcome event.
func (p *EventPublisher) PublishOutcome(ctx context.Context, outcome recovery.Outcome) error {
	body, err := json.Marshal(OutcomeEvent{
		Type:       EventType,
		OccurredAt: outcome.FinishedAt,
		Outcome:    outcome,
	})
	if err != nil {
		return err
	}
	key := outcome.SessionID
	if key == "" {
		key = outcome.HandleID
	}
	_, err = p.producer.Send(ctx, Message{
		Topic: p.topic,
		Key:   key,
		Value: body,
		Headers: map[string]string{
			HeaderEventType: EventType,
			HeaderHandleID:  outcome.HandleID,
			HeaderResult:    string(outcome.Result),
		},
	})
	return err
}

// ObserveOutcome implements recovery.Observer; failures are logged.
func (p *EventPublisher) ObserveOutcome(ctx context.Context, outcome recovery.Outcome) {
	if err := p.PublishOutcome(context.WithoutCancel(ctx), outcome); err != nil {
		log.WithTrace(ctx).WithError(err).WithField(log.FieldHandleID, outcome.HandleID).Warn("publish recovery outcome failed")
	}
}
