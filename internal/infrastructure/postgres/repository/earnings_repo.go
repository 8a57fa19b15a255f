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

type DefaultEarningsRepository struct {
	DB *gorm.DB
}

func NewDefaultEarningsRepository(db *gorm.DB) *DefaultEarningsRepository {
	return &DefaultEarningsRepository{
		DB: db,
	}
}

func (r *DefaultEarningsRepository) CreateRecord(record *domain.EarningsRecord) error {
	model := mappers.ToGORMEarningsRecord(record)
	return r.DB.Create(model).Error
}

func (r *DefaultEarningsRepository) GetRecordByID(recordID string) (*domain.EarningsRecord, error) {
	var model models.EarningsRecordModel
	if err := r.DB.Where("id = ?", recordID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, recordID)
		}
		return nil, err
	}
	return mappers.ToDomainEarningsRecord(&model), nil
}

func (r *DefaultEarningsRepository) GetRecords(filter domain.EarningsFilter) ([]*domain.EarningsRecord, error) {
	query := r.DB.Model(&models.EarningsRecordModel{})
	if filter.AdminID != "" {
		query = query.Where("admin_id = ?", filter.AdminID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}

	var recordModels []models.EarningsRecordModel
	if err := query.Order("created_at DESC").Find(&recordModels).Error; err != nil {
		return nil, err
	}
	records := make([]*domain.EarningsRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = mappers.ToDomainEarningsRecord(&model)
	}
	return records, nil
}

// UpdateRecordStatus only ever moves a record out of pending; the guard is
// in the query so a concurrent transition cannot double-apply.
func (r *DefaultEarningsRepository) UpdateRecordStatus(recordID string, status domain.EarningsStatus, settlementRef string) error {
	fields := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if settlementRef != "" {
		fields["settlement_ref"] = settlementRef
	}
	result := r.DB.Model(&models.EarningsRecordModel{}).
		Where("id = ? AND status = ?", recordID, string(domain.EarningsPending)).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: record %s", domain.ErrInvalidTransition, recordID)
	}
	return nil
}

func (r *DefaultEarningsRepository) SumByStatusSince(status domain.EarningsStatus, since time.Time) (float64, error) {
	query := r.DB.Model(&models.EarningsRecordModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", string(status))
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	var total float64
	if err := query.Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
