package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopkeep/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBroker(t *testing.T, buffer int) *Broker {
	t.Helper()

	broker := NewBroker(slog.New(slog.NewTextHandler(io.Discard, nil)), buffer)
	t.Cleanup(broker.Close)

	return broker
}

func receive(t *testing.T, ch <-chan Message) Message {
	t.Helper()

	select {
	case msg, ok := <-ch:
		require.True(t, ok, "channel closed")

		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}

	return Message{}
}

func TestBroker_FansOutToAllSubscribers(t *testing.T) {
	broker := createTestBroker(t, 4)
	first, unsubFirst := broker.Subscribe()
	defer unsubFirst()
	second, unsubSecond := broker.Subscribe()
	defer unsubSecond()

	broker.AddEvent(context.Background(), &entity.GameEvent{Day: 1, Kind: entity.KindInfo, Message: "Day 1 begins"})
	broker.AddNotification(context.Background(), entity.Notification{Kind: entity.KindError, Message: "Not enough gold"})

	for _, ch := range []<-chan Message{first, second} {
		msg := receive(t, ch)
		assert.Equal(t, MessageTypeEvent, msg.Type)
		require.NotNil(t, msg.Event)
		assert.Equal(t, "Day 1 begins", msg.Event.Message)

		msg = receive(t, ch)
		assert.Equal(t, MessageTypeNotification, msg.Type)
		require.NotNil(t, msg.Notification)
		assert.Equal(t, "Not enough gold", msg.Notification.Message)
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	broker := createTestBroker(t, 1)
	ch, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		for range 10 {
			broker.AddNotification(context.Background(), entity.Notification{Kind: entity.KindInfo, Message: "tick"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a full subscriber")
	}

	assert.Len(t, ch, 1)
}

func TestBroker_Unsubscribe(t *testing.T) {
	broker := createTestBroker(t, 1)
	ch, unsubscribe := broker.Subscribe()
	assert.Equal(t, 1, broker.Subscribers())

	unsubscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, broker.Subscribers())
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker(nil, 1)
	ch, unsubscribe := broker.Subscribe()

	broker.Close()
	broker.AddEvent(context.Background(), &entity.GameEvent{Message: "ignored"})
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)

	late, _ := broker.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}

func TestBroker_AddEvent_CopiesEvent(t *testing.T) {
	broker := createTestBroker(t, 1)
	ch, unsubscribe := broker.Subscribe()
	defer unsubscribe()

	event := &entity.GameEvent{Message: "original"}
	broker.AddEvent(context.Background(), event)
	event.Message = "changed"

	msg := receive(t, ch)
	assert.Equal(t, "original", msg.Event.Message)
}
