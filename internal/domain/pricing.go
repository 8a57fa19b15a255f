package domain

// PricingTier is a named pricing plan. Features is informational only and
// never enters the fee computation.
type PricingTier struct {
	ID       string
	Label    string
	BaseFee  float64
	Currency string
	Enabled  bool
	Features []string
}

// ServiceAddOn is an optional add-on priced additively on top of the tier
// fee, possibly in a different currency than the tier.
type ServiceAddOn struct {
	ID       string
	Label    string
	Price    float64
	Currency string
}

// DiscountTier is one (threshold, fraction) pair of a threshold-based rule
// family. Fraction is in [0, 1).
type DiscountTier struct {
	Threshold float64
	Fraction  float64
}

// DiscountRules holds the four independent rule families. Bulk, Volume and
// Loyalty are threshold-based; ReferralCodes is exact-match only.
// AdminReferralFraction applies when the code belongs to an active
// administrator rather than the static table.
type DiscountRules struct {
	Bulk                  []DiscountTier
	Volume                []DiscountTier
	Loyalty               []DiscountTier
	ReferralCodes         map[string]float64
	AdminReferralFraction float64
}

// PricingConfig is the engine's pricing snapshot: tiers, token-type
// multipliers keyed by token type label, add-on services and discount rules.
type PricingConfig struct {
	Tiers                map[string]PricingTier
	TokenTypeMultipliers map[string]float64
	Services             map[string]ServiceAddOn
	Discounts            DiscountRules
}

// CurrencyConverter converts an amount between currency units. The pricing
// calculator rejects cross-currency add-on totals unless one is injected.
type CurrencyConverter interface {
	Convert(amount float64, from, to string) (float64, error)
}
