package request

type SplitFeeRequest struct {
	Fee    float64 `json:"fee"`
	Policy string  `json:"policy"`
}

type AllocateRequest struct {
	EventID      string  `json:"event_id"`
	PlatformFee  float64 `json:"platform_fee"`
	LeadAdminFee float64 `json:"lead_admin_fee"`
	AdminPoolFee float64 `json:"admin_pool_fee"`
	ReferralFee  float64 `json:"referral_fee"`
	ReserveFund  float64 `json:"reserve_fund"`
}
