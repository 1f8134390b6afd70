package model

import (
	"time"

	"github.com/google/uuid"
)

// GameEventModel is the GORM-specific struct for the 'game_events' table.
// Events belong to a save slot and are removed together with it.
type GameEventModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key"`
	Slot      string        `gorm:"type:varchar(64);not null;index:idx_game_events_slot_created,priority:1"`
	Day       int           `gorm:"not null"`
	Kind      string        `gorm:"type:varchar(16);not null"`
	Message   string        `gorm:"type:text;not null"`
	CreatedAt time.Time     `gorm:"index:idx_game_events_slot_created,priority:2"`
	SaveSlot  SaveSlotModel `gorm:"foreignKey:Slot;references:Slot;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (GameEventModel) TableName() string {
	return "game_events"
}
