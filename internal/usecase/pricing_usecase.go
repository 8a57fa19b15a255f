package usecase

import (
	"fmt"
	"math"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	pricingdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/pricing"
)

type PricingUsecase interface {
	PriceTokenCreation(input *pricingdto.PriceTokenCreationInput) (*pricingdto.QuoteOutput, error)
	ApplyBulkDiscount(totalUnitsInOrder, fee float64) float64
	ApplyVolumeDiscount(totalSupplyValue, fee float64) float64
}

type DefaultPricingUsecase struct {
	cfg       domain.PricingConfig
	adminRepo domain.AdminRepository
	converter domain.CurrencyConverter
}

// NewDefaultPricingUsecase wires the pricing snapshot. adminRepo resolves
// administrator referral codes and may be nil; converter may be nil, in
// which case cross-currency add-on totals are rejected.
func NewDefaultPricingUsecase(
	cfg domain.PricingConfig,
	adminRepo domain.AdminRepository,
	converter domain.CurrencyConverter) *DefaultPricingUsecase {

	return &DefaultPricingUsecase{
		cfg:       cfg,
		adminRepo: adminRepo,
		converter: converter,
	}
}

// PriceTokenCreation computes the creation fee in a fixed order: base fee
// times token-type multiplier, plus add-on services, then loyalty and
// referral discounts applied multiplicatively. An 8% loyalty discount
// followed by a 10% referral discount reduces the fee by 17.2%, not 18%.
func (uc *DefaultPricingUsecase) PriceTokenCreation(input *pricingdto.PriceTokenCreationInput) (*pricingdto.QuoteOutput, error) {
	tier, ok := uc.cfg.Tiers[input.TierID]
	if !ok {
		return nil, fmt.Errorf("%w: tier %q", domain.ErrTierUnavailable, input.TierID)
	}
	if tier.BaseFee < 0 || math.IsNaN(tier.BaseFee) || math.IsInf(tier.BaseFee, 0) {
		return nil, fmt.Errorf("%w: tier %q base fee", domain.ErrInvalidAmount, input.TierID)
	}
	if !tier.Enabled {
		return nil, fmt.Errorf("%w: tier %q is disabled", domain.ErrTierUnavailable, input.TierID)
	}

	// An unrecognized token type is an error, never a silent 1.0: a typo in
	// deployed config must surface instead of mispricing every order.
	multiplier, ok := uc.cfg.TokenTypeMultipliers[input.TokenType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTokenType, input.TokenType)
	}

	fee := tier.BaseFee * multiplier

	servicesTotal := 0.0
	for _, serviceID := range input.Services {
		service, ok := uc.cfg.Services[serviceID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown service %q", domain.ErrConfiguration, serviceID)
		}
		price := service.Price
		if service.Currency != tier.Currency {
			if uc.converter == nil {
				return nil, fmt.Errorf("%w: service %q priced in %s, tier in %s",
					domain.ErrCurrencyMismatch, serviceID, service.Currency, tier.Currency)
			}
			converted, err := uc.converter.Convert(service.Price, service.Currency, tier.Currency)
			if err != nil {
				return nil, fmt.Errorf("converting service %q price: %w", serviceID, err)
			}
			price = converted
		}
		servicesTotal += price
	}
	fee += servicesTotal

	loyaltyFraction := ResolveThresholdDiscount(uc.cfg.Discounts.Loyalty, float64(input.CallerHistoricalCount))
	fee *= 1 - loyaltyFraction

	referralFraction := 0.0
	if input.ReferralCode != "" {
		referralFraction = uc.resolveReferralFraction(input.ReferralCode)
		fee *= 1 - referralFraction
	}

	return &pricingdto.QuoteOutput{
		Fee:              fee,
		Currency:         tier.Currency,
		BaseFee:          tier.BaseFee,
		Multiplier:       multiplier,
		ServicesTotal:    servicesTotal,
		LoyaltyFraction:  loyaltyFraction,
		ReferralFraction: referralFraction,
	}, nil
}

// resolveReferralFraction matches by exact code equality: configured codes
// first, then active administrator referral codes. At most one referral
// code applies per calculation; an unmatched code simply yields no discount.
func (uc *DefaultPricingUsecase) resolveReferralFraction(code string) float64 {
	if fraction, ok := uc.cfg.Discounts.ReferralCodes[code]; ok {
		return fraction
	}
	if uc.adminRepo == nil || uc.cfg.Discounts.AdminReferralFraction <= 0 {
		return 0
	}
	admin, err := uc.adminRepo.GetAdminByReferralCode(code)
	if err != nil || admin == nil || !admin.Active() {
		return 0
	}
	return uc.cfg.Discounts.AdminReferralFraction
}

// ApplyBulkDiscount discounts by units in a single order. It is a separate
// pipeline from PriceTokenCreation and is never composed with it
// automatically; callers decide whether to chain the two.
func (uc *DefaultPricingUsecase) ApplyBulkDiscount(totalUnitsInOrder, fee float64) float64 {
	return fee * (1 - ResolveThresholdDiscount(uc.cfg.Discounts.Bulk, totalUnitsInOrder))
}

// ApplyVolumeDiscount discounts by total supply or order value, same
// best-single-match policy as bulk.
func (uc *DefaultPricingUsecase) ApplyVolumeDiscount(totalSupplyValue, fee float64) float64 {
	return fee * (1 - ResolveThresholdDiscount(uc.cfg.Discounts.Volume, totalSupplyValue))
}
