package models

import "time"

// PayoutEventModel carries the at-most-once guarantee: EventID is unique,
// so a retried allocation hits the constraint instead of double-paying.
type PayoutEventModel struct {
	ID        string `gorm:"primaryKey"`
	EventID   string `gorm:"uniqueIndex;not null"`
	Payouts   []byte `gorm:"type:jsonb;not null"`
	Total     float64
	CreatedAt time.Time
}

func (PayoutEventModel) TableName() string {
	return "payout_events"
}
