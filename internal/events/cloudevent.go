package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic and event type names of the messaging service.
const (
	TopicMessageEvents  = "message.events"
	MessageReceived     = "message.received"
	SourceMessaging     = "service-messaging"
	cloudEventsSpecV1   = "1.0"
	jsonDataContentType = "application/json"
)

// CloudEvent is the envelope carried on every topic.
type CloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype,omitempty"`
	Data            json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in an envelope with a fresh id.
func NewCloudEvent(source, eventType string, data any) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("marshal %s data: %w", eventType, err)
	}
	return CloudEvent{
		SpecVersion:     cloudEventsSpecV1,
		ID:              uuid.NewString(),
		Source:          source,
		Type:            eventType,
		Time:            time.Now().UTC(),
		DataContentType: jsonDataContentType,
		Data:            raw,
	}, nil
}

// ParseCloudEvent decodes an envelope from a message value.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("parse cloud event: %w", err)
	}
	if ce.Type == "" {
		return CloudEvent{}, fmt.Errorf("parse cloud event: missing type")
	}
	return ce, nil
}

// ParseData decodes the event payload into v.
func (ce CloudEvent) ParseData(v any) error {
	if len(ce.Data) == 0 {
		return fmt.Errorf("%s event has no data", ce.Type)
	}
	if err := json.Unmarshal(ce.Data, v); err != nil {
		return fmt.Errorf("parse %s data: %w", ce.Type, err)
	}
	return nil
}

// MessageReceivedEvent announces a new message from a shelter.
type MessageReceivedEvent struct {
	ThreadID   string    `json:"thread_id"`
	MessageID  string    `json:"message_id"`
	Sender     string    `json:"sender"`
	Text       string    `json:"text"`
	Avatar     string    `json:"avatar,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
