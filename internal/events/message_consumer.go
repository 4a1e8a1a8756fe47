package events

import (
	"context"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/config"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

// Notifier shows a banner for an incoming message.
type Notifier interface {
	Show(n notification.Notification)
}

// MessageEventConsumer turns message events into notification banners.
type MessageEventConsumer struct {
	consumer *Consumer
	notifier Notifier
	logger   *zap.Logger
}

// NewMessageEventConsumer creates a consumer for the message topic. Every
// instance joins its own group so each client sees every message.
func NewMessageEventConsumer(
	cfg config.KafkaConfig,
	notifier Notifier,
	logger *zap.Logger,
) *MessageEventConsumer {
	topic := cfg.MessageTopic
	if topic == "" {
		topic = TopicMessageEvents
	}
	groupID := cfg.GroupPrefix + "notifications-" + uuid.NewString()[:8]
	return &MessageEventConsumer{
		consumer: NewConsumer(cfg.Brokers, groupID, topic, logger),
		notifier: notifier,
		logger:   logger,
	}
}

// Start begins consuming message events. This blocks until the context is cancelled.
func (c *MessageEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *MessageEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *MessageEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	ce, err := ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from message topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // malformed messages are not retried
	}

	switch ce.Type {
	case MessageReceived:
		return c.handleMessageReceived(ce)
	default:
		c.logger.Debug("ignoring unhandled message event type",
			zap.String("type", ce.Type),
		)
		return nil
	}
}

func (c *MessageEventConsumer) handleMessageReceived(ce CloudEvent) error {
	var evt MessageReceivedEvent
	if err := ce.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse MessageReceivedEvent data", zap.Error(err))
		return nil
	}
	if evt.ThreadID == "" {
		c.logger.Warn("message event without thread id", zap.String("event_id", ce.ID))
		return nil
	}

	id := evt.MessageID
	if id == "" {
		id = ce.ID
	}
	at := evt.OccurredAt
	if at.IsZero() {
		at = ce.Time
	}
	c.notifier.Show(notification.Notification{
		ID:       id,
		Sender:   evt.Sender,
		Text:     evt.Text,
		Avatar:   evt.Avatar,
		ThreadID: evt.ThreadID,
		At:       at,
	})

	c.logger.Info("message notification shown",
		zap.String("thread_id", evt.ThreadID),
		zap.String("sender", evt.Sender),
	)
	return nil
}
