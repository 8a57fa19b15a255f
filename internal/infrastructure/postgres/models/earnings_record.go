package models

import "time"

type EarningsRecordModel struct {
	ID            string `gorm:"primaryKey"`
	AdminID       string `gorm:"not null;index"`
	Amount        float64
	Source        string `gorm:"not null"`
	Status        string `gorm:"not null;index"`
	SettlementRef string
	Description   string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (EarningsRecordModel) TableName() string {
	return "earnings_records"
}
