package postgres

import (
	"log"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/config"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RevenueConfig) *gorm.DB {
	dsn := cfg.RevenueDB.Dsn
	// TranslateError lets the payout repository tell a duplicate event
	// (unique violation) apart from any other database failure.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.AdministratorModel{}, &models.EarningsRecordModel{}, &models.PayoutEventModel{})

	return db
}
