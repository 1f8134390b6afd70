package model

import (
	"time"

	"gorm.io/datatypes"
)

// SaveSlotModel is the GORM-specific struct for the 'save_slots' table.
// It holds the latest snapshot of one save slot; the game state is stored as JSON.
type SaveSlotModel struct {
	Slot      string         `gorm:"type:varchar(64);primary_key"`
	Version   int            `gorm:"not null;check:version > 0"`
	State     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaveSlotModel) TableName() string {
	return "save_slots"
}
