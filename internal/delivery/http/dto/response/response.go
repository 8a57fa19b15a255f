package response

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type QuoteResponse struct {
	Fee              float64 `json:"fee"`
	Currency         string  `json:"currency"`
	BaseFee          float64 `json:"base_fee"`
	Multiplier       float64 `json:"multiplier"`
	ServicesTotal    float64 `json:"services_total"`
	LoyaltyFraction  float64 `json:"loyalty_fraction"`
	ReferralFraction float64 `json:"referral_fraction"`
}

type DiscountedFeeResponse struct {
	Fee float64 `json:"fee"`
}

type DistributionResponse struct {
	PlatformFee  float64 `json:"platform_fee"`
	LeadAdminFee float64 `json:"lead_admin_fee"`
	AdminPoolFee float64 `json:"admin_pool_fee"`
	ReferralFee  float64 `json:"referral_fee"`
	ReserveFund  float64 `json:"reserve_fund"`
}

type AllocateResponse struct {
	EventID   string             `json:"event_id"`
	Payouts   map[string]float64 `json:"payouts"`
	Total     float64            `json:"total"`
	Duplicate bool               `json:"duplicate"`
	CreatedAt time.Time          `json:"created_at"`
}

type AdminResponse struct {
	ID              string    `json:"id"`
	WalletAddress   string    `json:"wallet_address"`
	DisplayName     string    `json:"display_name"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	FeeSharePercent float64   `json:"fee_share_percent"`
	LifetimeEarned  float64   `json:"lifetime_earned"`
	ReferralCode    string    `json:"referral_code"`
	InvitedBy       string    `json:"invited_by,omitempty"`
	Permissions     []string  `json:"permissions"`
	JoinedAt        time.Time `json:"joined_at"`
}

type EarningsRecordResponse struct {
	ID            string    `json:"id"`
	AdminID       string    `json:"admin_id"`
	Amount        float64   `json:"amount"`
	Source        string    `json:"source"`
	Status        string    `json:"status"`
	SettlementRef string    `json:"settlement_ref,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type TopPerformerResponse struct {
	AdminID        string  `json:"admin_id"`
	DisplayName    string  `json:"display_name"`
	Role           string  `json:"role"`
	LifetimeEarned float64 `json:"lifetime_earned"`
}

type AdminMetricsResponse struct {
	TotalRevenue         float64                `json:"total_revenue"`
	AverageAdminFeeShare float64                `json:"average_admin_fee_share"`
	TopPerformers        []TopPerformerResponse `json:"top_performers"`
	MonthlyDisbursed     float64                `json:"monthly_disbursed"`
	PendingPayments      float64                `json:"pending_payments"`
}
