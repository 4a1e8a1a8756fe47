package message

import (
	"strings"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser  Sender = "user"
	SenderOther Sender = "other"
)

// Thread is a conversation between the adopter and a shelter.
type Thread struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	PetName     string `json:"pet_name"`
	LastMessage string `json:"last_message"`
	Time        string `json:"time"`
	UnreadCount int    `json:"unread_count"`
}

// HasUnread returns true if the thread has messages the user has not seen.
func (t Thread) HasUnread() bool {
	return t.UnreadCount > 0
}

// Message is a single entry in a thread.
type Message struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	Sender    Sender `json:"sender"`
	Text      string `json:"text,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Timestamp string `json:"timestamp"`
}

// IsMine returns true for messages sent by the current user.
func (m Message) IsMine() bool {
	return m.Sender == SenderUser
}

// SendRequest is the body of POST /messages/threads/{id}. Exactly one of Text
// and ImageURL is set.
type SendRequest struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// NewTextMessage builds a text send request; blank text is rejected.
func NewTextMessage(text string) (SendRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SendRequest{}, domain.NewValidationError("message text is required")
	}
	return SendRequest{Text: text}, nil
}

// NewImageMessage builds an image send request.
func NewImageMessage(imageURL string) (SendRequest, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return SendRequest{}, domain.NewValidationError("image url is required")
	}
	return SendRequest{ImageURL: imageURL}, nil
}

// Validate checks that exactly one payload is present.
func (r SendRequest) Validate() error {
	hasText := strings.TrimSpace(r.Text) != ""
	hasImage := strings.TrimSpace(r.ImageURL) != ""
	if hasText == hasImage {
		return domain.NewValidationError("message needs either text or image_url")
	}
	return nil
}
