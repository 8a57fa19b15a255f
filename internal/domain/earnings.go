package domain

import "time"

type EarningsSource string

const (
	SourcePlatformFeeShare EarningsSource = "platform_fee_share"
	SourceReferral         EarningsSource = "referral"
	SourceBonus            EarningsSource = "bonus"
	SourceCommission       EarningsSource = "commission"
)

type EarningsStatus string

const (
	EarningsPending   EarningsStatus = "pending"
	EarningsPaid      EarningsStatus = "paid"
	EarningsCancelled EarningsStatus = "cancelled"
)

// EarningsRecord is one append-only ledger entry. Amount is immutable after
// creation; the only allowed mutations are the status transitions
// pending->paid and pending->cancelled.
type EarningsRecord struct {
	ID            string
	AdminID       string
	Amount        float64
	Source        EarningsSource
	Status        EarningsStatus
	SettlementRef string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanTransitionTo enforces the ledger's status machine.
func (r *EarningsRecord) CanTransitionTo(next EarningsStatus) bool {
	return r.Status == EarningsPending && (next == EarningsPaid || next == EarningsCancelled)
}

// PayoutResult is the outcome of one fee-event allocation. Payouts maps
// administrator ID to the amount credited. Duplicate is set when the result
// was replayed from a prior application of the same event identifier.
type PayoutResult struct {
	EventID   string
	Payouts   map[string]float64
	Total     float64
	Duplicate bool
	CreatedAt time.Time
}

type EarningsFilter struct {
	AdminID string
	Status  EarningsStatus
	Since   time.Time
}

type LedgerRepository interface {
	CreateRecord(record *EarningsRecord) error
	GetRecordByID(recordID string) (*EarningsRecord, error)
	GetRecords(filter EarningsFilter) ([]*EarningsRecord, error)
	UpdateRecordStatus(recordID string, status EarningsStatus, settlementRef string) error
	SumByStatusSince(status EarningsStatus, since time.Time) (float64, error)
}

// PayoutRepository persists one allocation atomically: the event row, its
// earnings records and the lifetime_earned increments commit or roll back
// together. SavePayout returns ErrDuplicateEvent when the event identifier
// was already applied.
type PayoutRepository interface {
	SavePayout(result *PayoutResult, records []*EarningsRecord) error
	GetPayoutByEventID(eventID string) (*PayoutResult, error)
}

type TopPerformer struct {
	AdminID        string
	DisplayName    string
	Role           Role
	LifetimeEarned float64
}

// AdminMetrics is recomputed from the directory and the ledger on every
// read, never cached.
type AdminMetrics struct {
	TotalRevenue         float64
	AverageAdminFeeShare float64
	TopPerformers        []TopPerformer
	MonthlyDisbursed     float64
	PendingPayments      float64
}
