// Package events fans game events and notifications out to live subscribers.
package events

import (
	"context"
	"log/slog"
	"sync"

	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/service"
)

// Message types carried by a Message.
const (
	MessageTypeEvent        = "event"
	MessageTypeNotification = "notification"
)

// Message is one item of the live stream.
type Message struct {
	Type         string               `json:"type"`
	Event        *entity.GameEvent    `json:"event,omitempty"`
	Notification *entity.Notification `json:"notification,omitempty"`
}

// Broker implements service.EventPublisher by fanning messages out to subscriber channels.
// Sends never block: a subscriber whose buffer is full misses the message.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan Message
	nextID int
	buffer int
	closed bool
	logger *slog.Logger
}

var _ service.EventPublisher = (*Broker)(nil)

// NewBroker creates a broker whose subscriber channels hold up to buffer messages.
func NewBroker(logger *slog.Logger, buffer int) *Broker {
	if buffer < 1 {
		buffer = 1
	}

	return &Broker{
		subs:   make(map[int]chan Message),
		buffer: buffer,
		logger: logger,
	}
}

// AddEvent publishes an event-log entry.
func (b *Broker) AddEvent(ctx context.Context, event *entity.GameEvent) {
	if event == nil {
		return
	}
	copied := *event
	b.publish(ctx, Message{Type: MessageTypeEvent, Event: &copied})
}

// AddNotification publishes a player notification.
func (b *Broker) AddNotification(ctx context.Context, notification entity.Notification) {
	b.publish(ctx, Message{Type: MessageTypeNotification, Notification: &notification})
}

// Subscribe registers a subscriber. The returned function unsubscribes and closes the channel;
// calling it more than once is safe.
func (b *Broker) Subscribe() (<-chan Message, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.buffer)
	if b.closed {
		close(ch)

		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}

	return ch, unsubscribe
}

// Subscribers returns the number of active subscribers.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close unsubscribes everyone. Messages published afterwards are discarded.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Broker) publish(ctx context.Context, msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	dropped := 0
	for _, ch := range b.subs {
		select {
		case ch <- msg:
		default:
			dropped++
		}
	}

	if dropped > 0 && b.logger != nil {
		b.logger.WarnContext(ctx, "Slow subscribers missed a message",
			slog.String("type", msg.Type),
			slog.Int("dropped", dropped),
		)
	}
}
