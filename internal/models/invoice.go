package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Customer   Customer  `gorm:"foreignKey:CustomerID"`
	// Amount is stored in integer cents.
	Amount    int64     `gorm:"index"`
	Status    string    `gorm:"index"`
	Date      time.Time `gorm:"index"`
	CreatedAt time.Time
}
