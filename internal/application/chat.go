package application

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/apiclient"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/message"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/loader"
)

// ChatScreen shows one thread and sends messages to it.
type ChatScreen struct {
	*loader.Loader[string, []message.Message]
	inbox  message.Inbox
	logger *zap.Logger

	mu      sync.Mutex
	input   string
	sendErr string
}

// NewChatScreen creates a ChatScreen with no thread open.
func NewChatScreen(inbox message.Inbox, logger *zap.Logger) *ChatScreen {
	logger = named(logger, "chat")
	return &ChatScreen{
		Loader: loader.New[string, []message.Message](inbox.GetMessages, FallbackLoadMessages, logger),
		inbox:  inbox,
		logger: logger,
	}
}

// Open loads threadID unless it is already open.
func (s *ChatScreen) Open(ctx context.Context, threadID string) error {
	return s.SetKey(ctx, threadID)
}

// ThreadID returns the open thread.
func (s *ChatScreen) ThreadID() string {
	return s.State().Key
}

// SetInput replaces the text being composed.
func (s *ChatScreen) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	s.mu.Unlock()
}

// Input returns the text being composed.
func (s *ChatScreen) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SendError returns the message of the last failed send, or "".
func (s *ChatScreen) SendError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendErr
}

// SendText sends the composed text. The input is cleared right away and
// restored if the request fails. Blank input or no open thread is a no-op.
func (s *ChatScreen) SendText(ctx context.Context) error {
	threadID := s.ThreadID()

	s.mu.Lock()
	text := s.input
	if strings.TrimSpace(text) == "" || threadID == "" {
		s.mu.Unlock()
		return nil
	}
	s.input = ""
	s.sendErr = ""
	s.mu.Unlock()

	req, err := message.NewTextMessage(text)
	if err == nil {
		err = s.send(ctx, threadID, req)
	}
	if err != nil {
		s.mu.Lock()
		if s.input == "" {
			s.input = text
		}
		s.mu.Unlock()
	}
	return err
}

// SendImage sends an image reference to the open thread.
func (s *ChatScreen) SendImage(ctx context.Context, imageURL string) error {
	threadID := s.ThreadID()
	if threadID == "" {
		return nil
	}
	req, err := message.NewImageMessage(imageURL)
	if err != nil {
		return err
	}
	return s.send(ctx, threadID, req)
}

func (s *ChatScreen) send(ctx context.Context, threadID string, req message.SendRequest) error {
	msg, err := s.inbox.SendMessage(ctx, threadID, req)
	if err != nil {
		s.mu.Lock()
		s.sendErr = apiclient.Message(err, FallbackSendMessage)
		s.mu.Unlock()
		s.logger.Error("failed to send message", zap.String("thread_id", threadID), zap.Error(err))
		return err
	}
	appended := s.Update(threadID, func(msgs []message.Message) []message.Message {
		return append(slices.Clip(msgs), *msg)
	})
	if !appended && s.ThreadID() == threadID {
		// The thread's messages never loaded; fetch them with the new one.
		if err := s.Refetch(ctx); err != nil && !errors.Is(err, loader.ErrSuperseded) {
			s.logger.Warn("failed to reload thread after send", zap.String("thread_id", threadID), zap.Error(err))
		}
	}
	return nil
}
