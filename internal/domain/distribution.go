package domain

// FeeDistribution is the five-way split of one realized fee. The five
// components always sum to the input fee: ReserveFund is computed by
// subtraction so floating-point residue lands there instead of being
// truncated away.
type FeeDistribution struct {
	PlatformFee  float64
	LeadAdminFee float64
	AdminPoolFee float64
	ReferralFee  float64
	ReserveFund  float64
}

func (d FeeDistribution) Total() float64 {
	return d.PlatformFee + d.LeadAdminFee + d.AdminPoolFee + d.ReferralFee + d.ReserveFund
}

// DistributionPolicy is one named percentage table. Two divergent tables
// exist in production (standard and partner); they stay separately
// configurable until product intent is clarified.
type DistributionPolicy struct {
	Name             string
	PlatformPercent  float64
	LeadPercent      float64
	AdminPoolPercent float64
	ReferralPercent  float64
}
