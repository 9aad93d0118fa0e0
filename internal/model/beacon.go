package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Beacon represents a positioned marker on the indoor map.
// Coordinates are stored as fixed-precision decimals so positions
// read back exactly as they were written.
type Beacon struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	PositionX    decimal.Decimal `json:"-" gorm:"type:decimal(12,6);not null"`
	PositionY    decimal.Decimal `json:"-" gorm:"type:decimal(12,6);not null"`
	Floor        int             `json:"floor" gorm:"not null"` // 0 denotes outdoor
	LocationType string          `json:"locationType" gorm:"size:255;not null"`
	InDoor       bool            `json:"inDoor" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Beacon) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Position returns the beacon's coordinates as an [x, y] pair.
func (b *Beacon) Position() []decimal.Decimal {
	return []decimal.Decimal{b.PositionX, b.PositionY}
}
