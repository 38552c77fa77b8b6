package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Email     string    `gorm:"uniqueIndex"`
	ImageURL  string
	CreatedAt time.Time
}
