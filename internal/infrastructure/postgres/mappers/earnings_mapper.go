package mappers

import (
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainEarningsRecord(model *models.EarningsRecordModel) *domain.EarningsRecord {
	return &domain.EarningsRecord{
		ID:            model.ID,
		AdminID:       model.AdminID,
		Amount:        model.Amount,
		Source:        domain.EarningsSource(model.Source),
		Status:        domain.EarningsStatus(model.Status),
		SettlementRef: model.SettlementRef,
		Description:   model.Description,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMEarningsRecord(record *domain.EarningsRecord) *models.EarningsRecordModel {
	return &models.EarningsRecordModel{
		ID:            record.ID,
		AdminID:       record.AdminID,
		Amount:        record.Amount,
		Source:        string(record.Source),
		Status:        string(record.Status),
		SettlementRef: record.SettlementRef,
		Description:   record.Description,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
