package models

import "time"

type AdministratorModel struct {
	ID              string `gorm:"primaryKey"`
	WalletAddress   string `gorm:"uniqueIndex;not null"`
	DisplayName     string
	Role            string `gorm:"not null"`
	Status          string `gorm:"not null;index"`
	FeeSharePercent float64
	LifetimeEarned  float64
	ReferralCode    string `gorm:"uniqueIndex"`
	InvitedBy       string
	JoinedAt        time.Time
	UpdatedAt       time.Time
}

func (AdministratorModel) TableName() string {
	return "administrators"
}
