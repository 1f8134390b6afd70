// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shopkeep/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for save slot persistence.
var (
	// ErrGameStateNotFound is returned when a save slot holds no snapshot.
	ErrGameStateNotFound = errors.New("game state not found")
)

// GameStateRepository stores one snapshot of the game state per save slot.
type GameStateRepository interface {
	// LoadSnapshot retrieves the snapshot of a slot, migrated to the current version.
	LoadSnapshot(ctx context.Context, slot string) (*entity.Snapshot, error)

	// SaveSnapshot replaces the snapshot of the slot named in snapshot.
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error

	// DeleteSnapshot removes the snapshot of a slot. Deleting a missing slot is not an error.
	DeleteSnapshot(ctx context.Context, slot string) error
}
