package usecase

import (
	"fmt"
	"math"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
)

type DistributionUsecase interface {
	SplitFee(fee float64) (domain.FeeDistribution, error)
	SplitFeeWithPolicy(policyName string, fee float64) (domain.FeeDistribution, error)
	Policies() []domain.DistributionPolicy
}

type DefaultDistributionUsecase struct {
	policies      map[string]domain.DistributionPolicy
	defaultPolicy string
}

func NewDefaultDistributionUsecase(policies []domain.DistributionPolicy, defaultPolicy string) (*DefaultDistributionUsecase, error) {
	if len(policies) == 0 {
		return nil, fmt.Errorf("%w: no distribution policies configured", domain.ErrConfiguration)
	}
	byName := make(map[string]domain.DistributionPolicy, len(policies))
	for _, policy := range policies {
		total := policy.PlatformPercent + policy.LeadPercent + policy.AdminPoolPercent + policy.ReferralPercent
		if policy.PlatformPercent < 0 || policy.LeadPercent < 0 || policy.AdminPoolPercent < 0 || policy.ReferralPercent < 0 || total > 100 {
			return nil, fmt.Errorf("%w: distribution policy %q percentages", domain.ErrConfiguration, policy.Name)
		}
		byName[policy.Name] = policy
	}
	if _, ok := byName[defaultPolicy]; !ok {
		return nil, fmt.Errorf("%w: default distribution policy %q not configured", domain.ErrConfiguration, defaultPolicy)
	}
	return &DefaultDistributionUsecase{
		policies:      byName,
		defaultPolicy: defaultPolicy,
	}, nil
}

func (uc *DefaultDistributionUsecase) SplitFee(fee float64) (domain.FeeDistribution, error) {
	return uc.SplitFeeWithPolicy(uc.defaultPolicy, fee)
}

// SplitFeeWithPolicy partitions one realized fee by the named percentage
// table. The reserve bucket is computed by subtraction so the five
// components sum to the input fee exactly: floating-point residue lands in
// the reserve instead of being truncated away.
func (uc *DefaultDistributionUsecase) SplitFeeWithPolicy(policyName string, fee float64) (domain.FeeDistribution, error) {
	policy, ok := uc.policies[policyName]
	if !ok {
		return domain.FeeDistribution{}, fmt.Errorf("%w: unknown distribution policy %q", domain.ErrConfiguration, policyName)
	}
	if fee < 0 || math.IsNaN(fee) || math.IsInf(fee, 0) {
		return domain.FeeDistribution{}, fmt.Errorf("%w: fee %v", domain.ErrInvalidAmount, fee)
	}

	dist := domain.FeeDistribution{
		PlatformFee:  fee * policy.PlatformPercent / 100,
		LeadAdminFee: fee * policy.LeadPercent / 100,
		AdminPoolFee: fee * policy.AdminPoolPercent / 100,
		ReferralFee:  fee * policy.ReferralPercent / 100,
	}
	dist.ReserveFund = fee - (dist.PlatformFee + dist.LeadAdminFee + dist.AdminPoolFee + dist.ReferralFee)
	return dist, nil
}

func (uc *DefaultDistributionUsecase) Policies() []domain.DistributionPolicy {
	policies := make([]domain.DistributionPolicy, 0, len(uc.policies))
	for _, policy := range uc.policies {
		policies = append(policies, policy)
	}
	return policies
}
