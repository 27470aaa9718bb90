package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemUserID is the reserved actor stamped on rows that are created or
// changed outside an authenticated request (seeders, CLI, defaults).
const SystemUserID = "00000000-0000-0000-0000-000000000001"

// Base carries the audit columns shared by every catalog table.
// Soft delete flips IsActive instead of removing the row.
type Base struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	CreatedBy string    `gorm:"size:36;not null;index" json:"created_by"`
	UpdatedBy string    `gorm:"size:36;not null" json:"updated_by"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	Sequence  int       `gorm:"not null;default:0" json:"sequence"`
}

// NewBase stamps a fresh audited row for the given actor.
func NewBase(actorID string) Base {
	if actorID == "" {
		actorID = SystemUserID
	}
	return Base{
		ID:        uuid.NewString(),
		CreatedBy: actorID,
		UpdatedBy: actorID,
		IsActive:  true,
	}
}

// Stamp records the actor of a mutation. gorm maintains UpdatedAt.
func (b *Base) Stamp(actorID string) {
	if actorID == "" {
		actorID = SystemUserID
	}
	b.UpdatedBy = actorID
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedBy == "" {
		b.CreatedBy = SystemUserID
	}
	if b.UpdatedBy == "" {
		b.UpdatedBy = b.CreatedBy
	}
	return nil
}
