package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/mappers"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{
		DB: db,
	}
}

// SavePayout commits the event row, the earnings records and the
// lifetime_earned increments in one transaction. The unique constraint on
// event_id is the at-most-once authority: a concurrent duplicate rolls the
// whole transaction back and surfaces ErrDuplicateEvent.
func (r *DefaultPayoutRepository) SavePayout(result *domain.PayoutResult, records []*domain.EarningsRecord) error {
	eventModel, err := mappers.ToGORMPayoutEvent(result)
	if err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(eventModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateEvent
			}
			return err
		}
		for _, record := range records {
			if err := tx.Create(mappers.ToGORMEarningsRecord(record)).Error; err != nil {
				return err
			}
			update := tx.Model(&models.AdministratorModel{}).
				Where("id = ?", record.AdminID).
				Updates(map[string]interface{}{
					"lifetime_earned": gorm.Expr("lifetime_earned + ?", record.Amount),
					"updated_at":      time.Now(),
				})
			if update.Error != nil {
				return update.Error
			}
			if update.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrAdminNotFound, record.AdminID)
			}
		}
		return nil
	})
}

func (r *DefaultPayoutRepository) GetPayoutByEventID(eventID string) (*domain.PayoutResult, error) {
	var model models.PayoutEventModel
	if err := r.DB.Where("event_id = ?", eventID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %s", domain.ErrRecordNotFound, eventID)
		}
		return nil, err
	}
	return mappers.ToDomainPayoutResult(&model)
}
