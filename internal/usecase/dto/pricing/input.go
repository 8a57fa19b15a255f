package pricingdto

type PriceTokenCreationInput struct {
	TierID                string
	TokenType             string
	Services              []string
	ReferralCode          string
	CallerHistoricalCount int
}
