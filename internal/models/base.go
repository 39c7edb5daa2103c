package models

import (
	"time"

	"moneymanager/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for locally stored rows. Ledger records are
// never stored here; they belong to the transaction service.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
