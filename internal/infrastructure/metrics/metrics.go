package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RevenueMetrics holds the engine's Prometheus collectors.
type RevenueMetrics struct {
	// Pricing
	QuotesComputedTotal prometheus.CounterVec
	QuoteErrorsTotal    prometheus.CounterVec

	// Fee splitting and payouts
	FeesSplitTotal        prometheus.CounterVec
	PlatformFeeTotal      prometheus.CounterVec
	PayoutsAllocatedTotal prometheus.CounterVec
	PayoutAmountTotal     prometheus.CounterVec
	DuplicateEventsTotal  prometheus.CounterVec
	AllocationErrorsTotal prometheus.CounterVec

	// Directory
	AdminsInvitedTotal prometheus.CounterVec
}

func NewRevenueMetrics() *RevenueMetrics {
	return &RevenueMetrics{
		QuotesComputedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_quotes_computed_total",
				Help: "Token creation quotes computed",
			},
			[]string{"tier", "token_type"},
		),
		QuoteErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_quote_errors_total",
				Help: "Quote computations rejected, by reason",
			},
			[]string{"reason"},
		),
		FeesSplitTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fees_split_total",
				Help: "Realized fees split into distribution buckets",
			},
			[]string{"policy"},
		),
		PlatformFeeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_fee_amount_total",
				Help: "Cumulative platform fee bucket amount",
			},
			[]string{},
		),
		PayoutsAllocatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_allocated_total",
				Help: "Fee events allocated to administrators",
			},
			[]string{},
		),
		PayoutAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_amount_total",
				Help: "Cumulative allocated amount by bucket",
			},
			[]string{"bucket"},
		),
		DuplicateEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_duplicate_events_total",
				Help: "Retried fee events answered from the stored result",
			},
			[]string{},
		),
		AllocationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_allocation_errors_total",
				Help: "Failed allocations, by reason",
			},
			[]string{"reason"},
		),
		AdminsInvitedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admins_invited_total",
				Help: "Administrators created through invites",
			},
			[]string{"role"},
		),
	}
}
