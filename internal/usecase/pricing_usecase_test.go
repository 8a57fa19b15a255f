package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	pricingdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricingConfig() domain.PricingConfig {
	return domain.PricingConfig{
		Tiers: map[string]domain.PricingTier{
			"starter":  {ID: "starter", BaseFee: 0.025, Currency: "ETH", Enabled: true},
			"legacy":   {ID: "legacy", BaseFee: 0.02, Currency: "ETH", Enabled: false},
			"negative": {ID: "negative", BaseFee: -1, Currency: "ETH", Enabled: true},
		},
		TokenTypeMultipliers: map[string]float64{
			"standard":   1.0,
			"governance": 1.5,
		},
		Services: map[string]domain.ServiceAddOn{
			"logo":  {ID: "logo", Price: 0.005, Currency: "ETH"},
			"audit": {ID: "audit", Price: 500, Currency: "USDC"},
		},
		Discounts: domain.DiscountRules{
			Loyalty: []domain.DiscountTier{
				{Threshold: 5, Fraction: 0.03},
				{Threshold: 25, Fraction: 0.08},
				{Threshold: 100, Fraction: 0.15},
			},
			Bulk: []domain.DiscountTier{
				{Threshold: 10, Fraction: 0.05},
				{Threshold: 50, Fraction: 0.10},
			},
			Volume: []domain.DiscountTier{
				{Threshold: 1000000, Fraction: 0.05},
			},
			ReferralCodes:         map[string]float64{"LAUNCH10": 0.10},
			AdminReferralFraction: 0.05,
		},
	}
}

type fixedRateConverter struct {
	rate float64
}

func (c fixedRateConverter) Convert(amount float64, from, to string) (float64, error) {
	return amount * c.rate, nil
}

func TestPriceTokenCreationBase(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.025, quote.Fee, 1e-12)
	assert.Equal(t, "ETH", quote.Currency)
}

func TestPriceTokenCreationMultiplier(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "governance",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0375, quote.Fee, 1e-12)
}

func TestPriceTokenCreationDiscountsCompoundMultiplicatively(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	// 8% loyalty then 10% referral: 0.025 * 0.92 * 0.90, a 17.2% total
	// reduction, not the additive 18%.
	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:                "starter",
		TokenType:             "standard",
		ReferralCode:          "LAUNCH10",
		CallerHistoricalCount: 30,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0207, quote.Fee, 1e-12)
	assert.Equal(t, 0.08, quote.LoyaltyFraction)
	assert.Equal(t, 0.10, quote.ReferralFraction)
}

func TestPriceTokenCreationServicesAreAdditive(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
		Services:  []string{"logo"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.03, quote.Fee, 1e-12)
	assert.InDelta(t, 0.005, quote.ServicesTotal, 1e-12)
}

func TestPriceTokenCreationUnknownTokenType(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	_, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "deflationary",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownTokenType)
}

func TestPriceTokenCreationTierErrors(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	tests := []struct {
		name   string
		tierID string
		want   error
	}{
		{"missing tier", "ghost", domain.ErrTierUnavailable},
		{"disabled tier", "legacy", domain.ErrTierUnavailable},
		{"negative base fee", "negative", domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
				TierID:    tt.tierID,
				TokenType: "standard",
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPriceTokenCreationNonFiniteBaseFee(t *testing.T) {
	cfg := testPricingConfig()
	cfg.Tiers["nan"] = domain.PricingTier{ID: "nan", BaseFee: math.NaN(), Currency: "ETH", Enabled: true}
	uc := NewDefaultPricingUsecase(cfg, nil, nil)

	_, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{TierID: "nan", TokenType: "standard"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestPriceTokenCreationCrossCurrencyRejectedWithoutConverter(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	_, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
		Services:  []string{"audit"},
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestPriceTokenCreationCrossCurrencyWithConverter(t *testing.T) {
	// 1 USDC = 0.0004 ETH for the test, so the 500 USDC audit adds 0.2 ETH.
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, fixedRateConverter{rate: 0.0004})

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
		Services:  []string{"audit"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.225, quote.Fee, 1e-12)
}

func TestPriceTokenCreationUnmatchedReferralCode(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:       "starter",
		TokenType:    "standard",
		ReferralCode: "NOPE",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.ReferralFraction)
	assert.InDelta(t, 0.025, quote.Fee, 1e-12)
}

func TestPriceTokenCreationAdminReferralCode(t *testing.T) {
	adminRepo := newFakeAdminRepo(&domain.AdministratorRecord{
		ID:           "adm-1",
		Role:         domain.RoleAdmin,
		Status:       domain.AdminActive,
		ReferralCode: "PARTNER1",
	})
	uc := NewDefaultPricingUsecase(testPricingConfig(), adminRepo, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:       "starter",
		TokenType:    "standard",
		ReferralCode: "PARTNER1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, quote.ReferralFraction)
	assert.InDelta(t, 0.025*0.95, quote.Fee, 1e-12)
}

func TestApplyBulkDiscountIsSeparatePipeline(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	quote, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
	})
	require.NoError(t, err)
	// The quote never includes the order-level bulk discount; chaining is
	// the caller's decision.
	assert.InDelta(t, 0.025, quote.Fee, 1e-12)

	assert.InDelta(t, 0.025*0.95, uc.ApplyBulkDiscount(12, quote.Fee), 1e-12)
	assert.InDelta(t, 0.025*0.90, uc.ApplyBulkDiscount(50, quote.Fee), 1e-12)
	assert.InDelta(t, 0.025, uc.ApplyBulkDiscount(2, quote.Fee), 1e-12)
}

func TestApplyVolumeDiscount(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	assert.InDelta(t, 0.095, uc.ApplyVolumeDiscount(2000000, 0.1), 1e-12)
	assert.InDelta(t, 0.1, uc.ApplyVolumeDiscount(500, 0.1), 1e-12)
}

func TestPriceTokenCreationUnknownService(t *testing.T) {
	uc := NewDefaultPricingUsecase(testPricingConfig(), nil, nil)

	_, err := uc.PriceTokenCreation(&pricingdto.PriceTokenCreationInput{
		TierID:    "starter",
		TokenType: "standard",
		Services:  []string{"ghost-service"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}
