package message

import "context"

// Inbox defines remote operations on message threads.
type Inbox interface {
	GetMessageThreads(ctx context.Context) ([]Thread, error)
	GetMessages(ctx context.Context, threadID string) ([]Message, error)
	SendMessage(ctx context.Context, threadID string, req SendRequest) (*Message, error)
}
