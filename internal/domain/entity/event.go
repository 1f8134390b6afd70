package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind classifies events and notifications for presentation.
type MessageKind string

const (
	KindInfo    MessageKind = "info"
	KindSuccess MessageKind = "success"
	KindWarning MessageKind = "warning"
	KindError   MessageKind = "error"
)

// GameEvent is an entry of the merchant's event log.
type GameEvent struct {
	ID        uuid.UUID   `json:"id"`         // Assigned when the event is recorded.
	Slot      string      `json:"slot"`       // Save slot the event belongs to.
	Day       int         `json:"day"`        // Game day on which the event happened.
	Kind      MessageKind `json:"kind"`       // Presentation kind.
	Message   string      `json:"message"`    // Human-readable description.
	CreatedAt time.Time   `json:"created_at"` // Wall-clock time of recording.
}

// Notification is a short-lived toast for the player. Notifications are not persisted.
type Notification struct {
	Kind    MessageKind `json:"kind"`
	Message string      `json:"message"`
}

// MarketReport is a pool entry describing a market event and its bias contribution.
type MarketReport struct {
	Message string              `json:"message" yaml:"message"`
	Bias    map[BiasKey]float64 `json:"bias" yaml:"bias"`
}
