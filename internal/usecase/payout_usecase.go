package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/kafka"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/metrics"
)

const payoutTopic = "payout-events"

type PayoutUsecase interface {
	Allocate(eventID string, dist domain.FeeDistribution) (*domain.PayoutResult, error)
}

type DefaultPayoutUsecase struct {
	adminRepo  domain.AdminRepository
	payoutRepo domain.PayoutRepository
	publisher  domain.EventPublisher
	metrics    *metrics.RevenueMetrics
}

// NewDefaultPayoutUsecase wires the allocator. publisher and revenueMetrics
// may be nil.
func NewDefaultPayoutUsecase(
	adminRepo domain.AdminRepository,
	payoutRepo domain.PayoutRepository,
	publisher domain.EventPublisher,
	revenueMetrics *metrics.RevenueMetrics) *DefaultPayoutUsecase {

	return &DefaultPayoutUsecase{
		adminRepo:  adminRepo,
		payoutRepo: payoutRepo,
		publisher:  publisher,
		metrics:    revenueMetrics,
	}
}

// Allocate distributes the lead and admin-pool buckets of one fee event.
// The sole active lead receives the lead bucket in full; active admins with
// a positive fee share split the pool proportionally. Application is
// at-most-once per event identifier: a retried event returns the stored
// result marked Duplicate instead of appending a second set of ledger
// entries.
func (uc *DefaultPayoutUsecase) Allocate(eventID string, dist domain.FeeDistribution) (*domain.PayoutResult, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: empty event identifier", domain.ErrInvalidAmount)
	}
	for _, amount := range []float64{dist.PlatformFee, dist.LeadAdminFee, dist.AdminPoolFee, dist.ReferralFee} {
		if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, fmt.Errorf("%w: distribution component %v", domain.ErrInvalidAmount, amount)
		}
	}

	// Fast path for retried requests. The transactional save below is the
	// authority: a concurrent duplicate slipping past this read is caught
	// by the unique event constraint.
	if prior, err := uc.payoutRepo.GetPayoutByEventID(eventID); err == nil && prior != nil {
		prior.Duplicate = true
		return prior, nil
	}

	admins, err := uc.adminRepo.GetActiveAdmins()
	if err != nil {
		return nil, fmt.Errorf("loading active administrators: %w", err)
	}

	payouts, err := computeAllocation(dist, admins)
	if err != nil {
		return nil, err
	}

	result := &domain.PayoutResult{
		EventID:   eventID,
		Payouts:   payouts,
		CreatedAt: time.Now(),
	}
	records := make([]*domain.EarningsRecord, 0, len(payouts))
	for adminID, amount := range payouts {
		result.Total += amount
		if amount <= 0 {
			continue
		}
		records = append(records, &domain.EarningsRecord{
			ID:          uuid.NewString(),
			AdminID:     adminID,
			Amount:      amount,
			Source:      domain.SourcePlatformFeeShare,
			Status:      domain.EarningsPending,
			Description: fmt.Sprintf("fee share for event %s", eventID),
			CreatedAt:   result.CreatedAt,
		})
	}

	if err := uc.payoutRepo.SavePayout(result, records); err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			stored, getErr := uc.payoutRepo.GetPayoutByEventID(eventID)
			if getErr != nil {
				return nil, fmt.Errorf("loading prior payout for event %s: %w", eventID, getErr)
			}
			stored.Duplicate = true
			return stored, nil
		}
		return nil, fmt.Errorf("saving payout for event %s: %w", eventID, err)
	}

	uc.observe(result, dist)
	uc.publish(result)
	return result, nil
}

// computeAllocation is pure arithmetic over the admin snapshot. With no
// eligible pool admin the pool stays unallocated; rerouting it to the
// reserve is a caller decision, never implicit.
func computeAllocation(dist domain.FeeDistribution, admins []*domain.AdministratorRecord) (map[string]float64, error) {
	var lead *domain.AdministratorRecord
	var eligible []*domain.AdministratorRecord
	totalShare := 0.0

	for _, admin := range admins {
		if !admin.Active() {
			continue
		}
		if admin.Role == domain.RoleLead {
			if lead != nil {
				return nil, fmt.Errorf("%w: multiple active lead administrators", domain.ErrConfiguration)
			}
			lead = admin
			continue
		}
		if admin.EligibleForPool() {
			eligible = append(eligible, admin)
			totalShare += admin.FeeSharePercent
		}
	}
	if lead == nil {
		return nil, fmt.Errorf("%w: no active lead administrator", domain.ErrConfiguration)
	}

	payouts := map[string]float64{
		lead.ID: dist.LeadAdminFee,
	}
	for _, admin := range eligible {
		payouts[admin.ID] = dist.AdminPoolFee * (admin.FeeSharePercent / totalShare)
	}
	return payouts, nil
}

func (uc *DefaultPayoutUsecase) observe(result *domain.PayoutResult, dist domain.FeeDistribution) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.PayoutsAllocatedTotal.WithLabelValues().Inc()
	uc.metrics.PayoutAmountTotal.WithLabelValues("lead").Add(dist.LeadAdminFee)
	uc.metrics.PayoutAmountTotal.WithLabelValues("admin_pool").Add(result.Total - dist.LeadAdminFee)
	uc.metrics.PlatformFeeTotal.WithLabelValues().Add(dist.PlatformFee)
}

func (uc *DefaultPayoutUsecase) publish(result *domain.PayoutResult) {
	if uc.publisher == nil {
		return
	}
	event := kafka.PayoutEvent{
		EventID:   result.EventID,
		Payouts:   result.Payouts,
		Total:     result.Total,
		CreatedAt: result.CreatedAt,
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("marshal payout event", "event_id", result.EventID, "error", err)
		return
	}
	if err := uc.publisher.Publish(payoutTopic, domain.Message{
		Key:   []byte(result.EventID),
		Value: value,
	}); err != nil {
		slog.Error("publish payout event", "event_id", result.EventID, "error", err)
	}
}
