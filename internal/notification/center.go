// Package notification holds the in-app message banner and unread counter.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is a new-message banner.
type Notification struct {
	ID       string    `json:"id"`
	Sender   string    `json:"sender"`
	Text     string    `json:"text"`
	Avatar   string    `json:"avatar,omitempty"`
	ThreadID string    `json:"thread_id"`
	At       time.Time `json:"at"`
}

// Demo is the banner shown by the simulated message feed.
var Demo = Notification{
	ID:       "n1",
	Sender:   "快樂爪收容所",
	Text:     "您好！關於 Bella 的領養申請，我們有新的進度想與您分享...",
	Avatar:   "https://picsum.photos/seed/shelter/100/100",
	ThreadID: "00000000-0000-0000-0000-000000000011",
}

// Listener receives the active banner (nil when dismissed) and unread count.
type Listener func(active *Notification, unread int)

// Center tracks the active banner and unread count.
type Center struct {
	mu        sync.Mutex
	active    *Notification
	unread    int
	listeners map[int]Listener
	nextSub   int
}

// NewCenter creates an empty Center.
func NewCenter() *Center {
	return &Center{listeners: make(map[int]Listener)}
}

// Show makes n the active banner and counts it as unread.
func (c *Center) Show(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.At.IsZero() {
		n.At = time.Now()
	}
	c.mu.Lock()
	c.active = &n
	c.unread++
	c.notifyLocked()
}

// Dismiss hides the active banner without touching the unread count.
func (c *Center) Dismiss() {
	c.mu.Lock()
	c.active = nil
	c.notifyLocked()
}

// ClearUnread resets the unread count.
func (c *Center) ClearUnread() {
	c.mu.Lock()
	c.unread = 0
	c.notifyLocked()
}

// Active returns a copy of the active banner.
func (c *Center) Active() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return Notification{}, false
	}
	return *c.active, true
}

// Unread returns the number of unseen banners.
func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// HasUnread reports whether any banner is unseen.
func (c *Center) HasUnread() bool {
	return c.Unread() > 0
}

// Subscribe registers fn and returns a func that removes it.
func (c *Center) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// ScheduleDemo shows n after delay. The returned func cancels the banner if
// it has not fired yet.
func (c *Center) ScheduleDemo(delay time.Duration, n Notification) (stop func()) {
	t := time.AfterFunc(delay, func() { c.Show(n) })
	return func() { t.Stop() }
}

// notifyLocked releases c.mu and calls the listeners.
func (c *Center) notifyLocked() {
	var active *Notification
	if c.active != nil {
		n := *c.active
		active = &n
	}
	unread := c.unread
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(active, unread)
	}
}
