package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LaunchRecord is one entry in the launch history: a ROM that was handed to
// an emulator, with enough context to relaunch it.
type LaunchRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	System     string    `gorm:"type:text;index"` // e.g. "nes"
	Name       string    `gorm:"type:text"`       // file name shown in menus
	Path       string    `gorm:"type:text"`       // absolute ROM path
	LaunchedAt time.Time `gorm:"index"`
	gorm.Model
}

// BeforeCreate assigns the record ID; sqlite has no server-side uuid default.
func (r *LaunchRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.LaunchedAt.IsZero() {
		r.LaunchedAt = time.Now()
	}
	return nil
}
