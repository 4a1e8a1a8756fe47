package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

func newTestConsumer(center *notification.Center) *MessageEventConsumer {
	return &MessageEventConsumer{notifier: center, logger: zap.NewNop()}
}

func mustEvent(t *testing.T, eventType string, data any) kafkago.Message {
	t.Helper()
	ce, err := NewCloudEvent(SourceMessaging, eventType, data)
	require.NoError(t, err)
	value, err := json.Marshal(ce)
	require.NoError(t, err)
	return kafkago.Message{Topic: TopicMessageEvents, Value: value}
}

func TestHandleMessage_MessageReceivedShowsBanner(t *testing.T) {
	center := notification.NewCenter()
	c := newTestConsumer(center)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := c.handleMessage(context.Background(), mustEvent(t, MessageReceived, MessageReceivedEvent{
		ThreadID:   "t1",
		MessageID:  "m1",
		Sender:     "快樂爪收容所",
		Text:       "您好",
		OccurredAt: at,
	}))
	require.NoError(t, err)

	n, ok := center.Active()
	require.True(t, ok)
	assert.Equal(t, "m1", n.ID)
	assert.Equal(t, "t1", n.ThreadID)
	assert.Equal(t, "快樂爪收容所", n.Sender)
	assert.Equal(t, at, n.At)
	assert.Equal(t, 1, center.Unread())
}

func TestHandleMessage_SkipsMalformedAndUnknown(t *testing.T) {
	center := notification.NewCenter()
	c := newTestConsumer(center)
	ctx := context.Background()

	assert.NoError(t, c.handleMessage(ctx, kafkago.Message{Value: []byte("not json")}))
	assert.NoError(t, c.handleMessage(ctx, mustEvent(t, "message.read", map[string]string{"thread_id": "t1"})))
	assert.NoError(t, c.handleMessage(ctx, mustEvent(t, MessageReceived, "oops")))
	assert.NoError(t, c.handleMessage(ctx, mustEvent(t, MessageReceived, MessageReceivedEvent{Text: "no thread"})))

	_, ok := center.Active()
	assert.False(t, ok)
	assert.Zero(t, center.Unread())
}

func TestHandleMessage_FallsBackToEnvelope(t *testing.T) {
	center := notification.NewCenter()
	c := newTestConsumer(center)

	ce, err := NewCloudEvent(SourceMessaging, MessageReceived, MessageReceivedEvent{ThreadID: "t2"})
	require.NoError(t, err)
	value, err := json.Marshal(ce)
	require.NoError(t, err)

	require.NoError(t, c.handleMessage(context.Background(), kafkago.Message{Value: value}))
	n, ok := center.Active()
	require.True(t, ok)
	assert.Equal(t, ce.ID, n.ID)
	assert.True(t, ce.Time.Equal(n.At))
}

func TestParseCloudEvent(t *testing.T) {
	_, err := ParseCloudEvent([]byte(`{"id":"1"}`))
	assert.Error(t, err)

	ce, err := ParseCloudEvent([]byte(`{"specversion":"1.0","id":"1","type":"message.received","data":{"thread_id":"t"}}`))
	require.NoError(t, err)
	var evt MessageReceivedEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, "t", evt.ThreadID)

	assert.Error(t, CloudEvent{Type: "x"}.ParseData(&evt))
}
