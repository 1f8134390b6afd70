package repository

import (
	"context"

	"shopkeep/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateEvent is returned when an event with the same id is already recorded.
	ErrDuplicateEvent = errors.New("event already recorded")
)

// EventRepository is the append-only event log of each save slot.
type EventRepository interface {
	// AppendEvents records events in order.
	AppendEvents(ctx context.Context, events []*entity.GameEvent) error

	// ListRecentEvents returns up to limit events of a slot, newest first.
	ListRecentEvents(ctx context.Context, slot string, limit int) ([]*entity.GameEvent, error)

	// DeleteEvents removes the whole log of a slot.
	DeleteEvents(ctx context.Context, slot string) error
}
