package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ORDER_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation for events without extra behavior.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const TypeOrderCompleted = "ORDER_COMPLETED"

// NewOrderCompleted builds the event published when a visitor confirms a
// pre-order and the receipt has been synthesized.
func NewOrderCompleted(name, email, plan, paymentType, receipt string) BaseEvent {
	return BaseEvent{
		Type: TypeOrderCompleted,
		Data: map[string]interface{}{
			"name":         name,
			"email":        email,
			"plan":         plan,
			"payment_type": paymentType,
			"receipt":      receipt,
		},
		OccurredAt: time.Now(),
	}
}
