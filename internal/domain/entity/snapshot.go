package entity

import "time"

// SnapshotVersion is the current marker written with every saved game.
const SnapshotVersion = 2

// Snapshot is the persisted form of a game: the whole state of one save slot.
type Snapshot struct {
	Slot      string    `json:"slot"`
	Version   int       `json:"version"`
	State     GameState `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Migrate upgrades a loaded snapshot in place. The layout has not changed between
// versions, so migration only bumps the marker and normalizes the state.
// It reports whether the snapshot was changed.
func (s *Snapshot) Migrate() bool {
	migrated := false
	if s.Version < SnapshotVersion {
		s.Version = SnapshotVersion
		migrated = true
	}
	s.State.Normalize()

	return migrated
}
