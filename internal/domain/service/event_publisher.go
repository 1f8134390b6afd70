package service

import (
	"context"

	"shopkeep/internal/domain/entity"
)

// EventPublisher is the sink for the game's event log and player notifications.
// Both calls are fire-and-forget: they never block and never fail the operation that emitted them.
type EventPublisher interface {
	// AddEvent publishes a recorded event-log entry.
	AddEvent(ctx context.Context, event *entity.GameEvent)

	// AddNotification publishes a short-lived notification for the player.
	AddNotification(ctx context.Context, notification entity.Notification)
}
