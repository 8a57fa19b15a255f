package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainPayoutResult(model *models.PayoutEventModel) (*domain.PayoutResult, error) {
	payouts := make(map[string]float64)
	if err := json.Unmarshal(model.Payouts, &payouts); err != nil {
		return nil, fmt.Errorf("decoding payouts for event %s: %w", model.EventID, err)
	}
	return &domain.PayoutResult{
		EventID:   model.EventID,
		Payouts:   payouts,
		Total:     model.Total,
		CreatedAt: model.CreatedAt,
	}, nil
}

func ToGORMPayoutEvent(result *domain.PayoutResult) (*models.PayoutEventModel, error) {
	payouts, err := json.Marshal(result.Payouts)
	if err != nil {
		return nil, fmt.Errorf("encoding payouts for event %s: %w", result.EventID, err)
	}
	return &models.PayoutEventModel{
		ID:        uuid.NewString(),
		EventID:   result.EventID,
		Payouts:   payouts,
		Total:     result.Total,
		CreatedAt: result.CreatedAt,
	}, nil
}
