package ledgerdto

import "github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"

type RecordEarningsInput struct {
	AdminID       string
	Amount        float64
	Source        domain.EarningsSource
	SettlementRef string
	Description   string
}
