package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	ledgerdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/ledger"
)

type LedgerUsecase interface {
	RecordEarnings(input *ledgerdto.RecordEarningsInput) (*domain.EarningsRecord, error)
	MarkPaid(recordID, settlementRef string) error
	CancelRecord(recordID string) error
	ListRecords(filter domain.EarningsFilter) ([]*domain.EarningsRecord, error)
	Metrics() (*domain.AdminMetrics, error)
}

type DefaultLedgerUsecase struct {
	ledgerRepo domain.LedgerRepository
	adminRepo  domain.AdminRepository
}

func NewDefaultLedgerUsecase(ledgerRepo domain.LedgerRepository, adminRepo domain.AdminRepository) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		ledgerRepo: ledgerRepo,
		adminRepo:  adminRepo,
	}
}

func (uc *DefaultLedgerUsecase) RecordEarnings(input *ledgerdto.RecordEarningsInput) (*domain.EarningsRecord, error) {
	if input.Amount < 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, fmt.Errorf("%w: earnings amount %v", domain.ErrInvalidAmount, input.Amount)
	}
	if _, err := uc.adminRepo.GetAdminByID(input.AdminID); err != nil {
		return nil, fmt.Errorf("loading administrator %s: %w", input.AdminID, err)
	}
	record := &domain.EarningsRecord{
		ID:            uuid.NewString(),
		AdminID:       input.AdminID,
		Amount:        input.Amount,
		Source:        input.Source,
		Status:        domain.EarningsPending,
		SettlementRef: input.SettlementRef,
		Description:   input.Description,
		CreatedAt:     time.Now(),
	}
	if err := uc.ledgerRepo.CreateRecord(record); err != nil {
		return nil, fmt.Errorf("appending earnings record: %w", err)
	}
	return record, nil
}

func (uc *DefaultLedgerUsecase) MarkPaid(recordID, settlementRef string) error {
	return uc.transition(recordID, domain.EarningsPaid, settlementRef)
}

func (uc *DefaultLedgerUsecase) CancelRecord(recordID string) error {
	return uc.transition(recordID, domain.EarningsCancelled, "")
}

// transition enforces the ledger's status machine: pending->paid and
// pending->cancelled only, never back.
func (uc *DefaultLedgerUsecase) transition(recordID string, next domain.EarningsStatus, settlementRef string) error {
	record, err := uc.ledgerRepo.GetRecordByID(recordID)
	if err != nil {
		return fmt.Errorf("loading earnings record %s: %w", recordID, err)
	}
	if !record.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, record.Status, next)
	}
	return uc.ledgerRepo.UpdateRecordStatus(recordID, next, settlementRef)
}

func (uc *DefaultLedgerUsecase) ListRecords(filter domain.EarningsFilter) ([]*domain.EarningsRecord, error) {
	return uc.ledgerRepo.GetRecords(filter)
}

// Metrics recomputes every aggregate from the directory and the ledger on
// each call. Nothing here is cached: the ledger is the source of truth and
// a stale total can never drift from it.
func (uc *DefaultLedgerUsecase) Metrics() (*domain.AdminMetrics, error) {
	admins, err := uc.adminRepo.GetAllAdmins()
	if err != nil {
		return nil, fmt.Errorf("loading administrators: %w", err)
	}

	result := &domain.AdminMetrics{}
	activeAdminShares := 0.0
	activeAdminCount := 0
	for _, admin := range admins {
		result.TotalRevenue += admin.LifetimeEarned
		if admin.Active() && admin.Role == domain.RoleAdmin {
			activeAdminShares += admin.FeeSharePercent
			activeAdminCount++
		}
	}
	if activeAdminCount > 0 {
		result.AverageAdminFeeShare = activeAdminShares / float64(activeAdminCount)
	}

	ranked := make([]*domain.AdministratorRecord, len(admins))
	copy(ranked, admins)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].LifetimeEarned != ranked[j].LifetimeEarned {
			return ranked[i].LifetimeEarned > ranked[j].LifetimeEarned
		}
		return ranked[i].JoinedAt.Before(ranked[j].JoinedAt)
	})
	for i := 0; i < len(ranked) && i < 5; i++ {
		result.TopPerformers = append(result.TopPerformers, domain.TopPerformer{
			AdminID:        ranked[i].ID,
			DisplayName:    ranked[i].DisplayName,
			Role:           ranked[i].Role,
			LifetimeEarned: ranked[i].LifetimeEarned,
		})
	}

	monthly, err := uc.ledgerRepo.SumByStatusSince(domain.EarningsPaid, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("summing disbursed records: %w", err)
	}
	result.MonthlyDisbursed = monthly

	pending, err := uc.ledgerRepo.SumByStatusSince(domain.EarningsPending, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("summing pending records: %w", err)
	}
	result.PendingPayments = pending

	return result, nil
}
