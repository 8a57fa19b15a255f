package usecase

import "github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"

// ResolveThresholdDiscount picks the single best tier: the largest threshold
// not exceeding the observed value wins. Tiers are never cumulative within a
// family, so an observed value of 30 against thresholds 5 and 25 yields the
// 25-tier fraction alone.
func ResolveThresholdDiscount(tiers []domain.DiscountTier, observed float64) float64 {
	best := -1.0
	fraction := 0.0
	for _, tier := range tiers {
		if tier.Threshold <= observed && tier.Threshold > best {
			best = tier.Threshold
			fraction = tier.Fraction
		}
	}
	return fraction
}
