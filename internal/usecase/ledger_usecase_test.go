package usecase

import (
	"testing"
	"time"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	ledgerdto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEarnings(t *testing.T) {
	adminRepo := newFakeAdminRepo(
		&domain.AdministratorRecord{ID: "adm-1", Role: domain.RoleAdmin, Status: domain.AdminActive},
	)
	ledgerRepo := newFakeLedgerRepo()
	uc := NewDefaultLedgerUsecase(ledgerRepo, adminRepo)

	record, err := uc.RecordEarnings(&ledgerdto.RecordEarningsInput{
		AdminID:     "adm-1",
		Amount:      0.005,
		Source:      domain.SourceReferral,
		Description: "referral bonus",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, domain.EarningsPending, record.Status)

	_, err = uc.RecordEarnings(&ledgerdto.RecordEarningsInput{AdminID: "adm-1", Amount: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.RecordEarnings(&ledgerdto.RecordEarningsInput{AdminID: "ghost", Amount: 1})
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestLedgerStatusTransitions(t *testing.T) {
	adminRepo := newFakeAdminRepo()
	ledgerRepo := newFakeLedgerRepo(
		&domain.EarningsRecord{ID: "rec-1", AdminID: "adm-1", Amount: 1, Status: domain.EarningsPending},
		&domain.EarningsRecord{ID: "rec-2", AdminID: "adm-1", Amount: 2, Status: domain.EarningsPending},
		&domain.EarningsRecord{ID: "rec-3", AdminID: "adm-1", Amount: 3, Status: domain.EarningsPaid},
	)
	uc := NewDefaultLedgerUsecase(ledgerRepo, adminRepo)

	require.NoError(t, uc.MarkPaid("rec-1", "tx-777"))
	record, err := ledgerRepo.GetRecordByID("rec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EarningsPaid, record.Status)
	assert.Equal(t, "tx-777", record.SettlementRef)

	require.NoError(t, uc.CancelRecord("rec-2"))

	// paid records never move again
	assert.ErrorIs(t, uc.MarkPaid("rec-3", ""), domain.ErrInvalidTransition)
	assert.ErrorIs(t, uc.CancelRecord("rec-1"), domain.ErrInvalidTransition)
}

func TestMetricsAggregation(t *testing.T) {
	now := time.Now()
	adminRepo := newFakeAdminRepo(
		&domain.AdministratorRecord{ID: "lead-1", Role: domain.RoleLead, Status: domain.AdminActive, LifetimeEarned: 5, JoinedAt: now.AddDate(0, -6, 0)},
		&domain.AdministratorRecord{ID: "adm-1", Role: domain.RoleAdmin, Status: domain.AdminActive, FeeSharePercent: 15, LifetimeEarned: 3, JoinedAt: now.AddDate(0, -5, 0)},
		&domain.AdministratorRecord{ID: "adm-2", Role: domain.RoleAdmin, Status: domain.AdminActive, FeeSharePercent: 5, LifetimeEarned: 2, JoinedAt: now.AddDate(0, -4, 0)},
		// inactive admins are excluded from the average, not from revenue
		&domain.AdministratorRecord{ID: "adm-3", Role: domain.RoleAdmin, Status: domain.AdminInactive, FeeSharePercent: 40, LifetimeEarned: 1, JoinedAt: now.AddDate(0, -3, 0)},
		&domain.AdministratorRecord{ID: "mod-1", Role: domain.RoleModerator, Status: domain.AdminActive, LifetimeEarned: 0.5, JoinedAt: now.AddDate(0, -2, 0)},
	)
	ledgerRepo := newFakeLedgerRepo(
		&domain.EarningsRecord{ID: "r1", AdminID: "adm-1", Amount: 1.5, Status: domain.EarningsPaid, CreatedAt: now.AddDate(0, 0, -3)},
		&domain.EarningsRecord{ID: "r2", AdminID: "adm-2", Amount: 0.5, Status: domain.EarningsPaid, CreatedAt: now.AddDate(0, 0, -90)},
		&domain.EarningsRecord{ID: "r3", AdminID: "adm-1", Amount: 0.7, Status: domain.EarningsPending, CreatedAt: now.AddDate(0, 0, -1)},
		&domain.EarningsRecord{ID: "r4", AdminID: "mod-1", Amount: 0.3, Status: domain.EarningsCancelled, CreatedAt: now},
	)
	uc := NewDefaultLedgerUsecase(ledgerRepo, adminRepo)

	result, err := uc.Metrics()
	require.NoError(t, err)

	assert.InDelta(t, 11.5, result.TotalRevenue, 1e-9)
	// mean over active admin-role shares 15 and 5 only
	assert.InDelta(t, 10, result.AverageAdminFeeShare, 1e-9)
	// paid within the trailing 30 days only
	assert.InDelta(t, 1.5, result.MonthlyDisbursed, 1e-9)
	assert.InDelta(t, 0.7, result.PendingPayments, 1e-9)

	require.Len(t, result.TopPerformers, 5)
	assert.Equal(t, "lead-1", result.TopPerformers[0].AdminID)
	assert.Equal(t, "adm-1", result.TopPerformers[1].AdminID)
	assert.Equal(t, "adm-2", result.TopPerformers[2].AdminID)
}

func TestMetricsTopPerformersTieBreak(t *testing.T) {
	now := time.Now()
	adminRepo := newFakeAdminRepo(
		&domain.AdministratorRecord{ID: "late", Role: domain.RoleAdmin, Status: domain.AdminActive, LifetimeEarned: 2, JoinedAt: now},
		&domain.AdministratorRecord{ID: "early", Role: domain.RoleAdmin, Status: domain.AdminActive, LifetimeEarned: 2, JoinedAt: now.AddDate(-1, 0, 0)},
	)
	uc := NewDefaultLedgerUsecase(newFakeLedgerRepo(), adminRepo)

	result, err := uc.Metrics()
	require.NoError(t, err)
	require.Len(t, result.TopPerformers, 2)
	// equal earnings: the earlier joiner ranks first
	assert.Equal(t, "early", result.TopPerformers[0].AdminID)
	assert.Equal(t, "late", result.TopPerformers[1].AdminID)
}

func TestMetricsNoActiveAdmins(t *testing.T) {
	adminRepo := newFakeAdminRepo(
		&domain.AdministratorRecord{ID: "lead-1", Role: domain.RoleLead, Status: domain.AdminActive, FeeSharePercent: 50},
	)
	uc := NewDefaultLedgerUsecase(newFakeLedgerRepo(), adminRepo)

	result, err := uc.Metrics()
	require.NoError(t, err)
	// the lead's share never enters the average
	assert.Equal(t, 0.0, result.AverageAdminFeeShare)
}
