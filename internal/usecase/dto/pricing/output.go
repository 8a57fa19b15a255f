package pricingdto

type QuoteOutput struct {
	Fee              float64
	Currency         string
	BaseFee          float64
	Multiplier       float64
	ServicesTotal    float64
	LoyaltyFraction  float64
	ReferralFraction float64
}
