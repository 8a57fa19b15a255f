package request

type QuoteRequest struct {
	TierID                string   `json:"tier_id"`
	TokenType             string   `json:"token_type"`
	Services              []string `json:"services"`
	ReferralCode          string   `json:"referral_code"`
	CallerHistoricalCount int      `json:"caller_historical_count"`
}

type BulkDiscountRequest struct {
	Units float64 `json:"units"`
	Fee   float64 `json:"fee"`
}

type VolumeDiscountRequest struct {
	Value float64 `json:"value"`
	Fee   float64 `json:"fee"`
}
