package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
)

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins []*domain.AdministratorRecord
}

func newFakeAdminRepo(admins ...*domain.AdministratorRecord) *fakeAdminRepo {
	return &fakeAdminRepo{admins: admins}
}

func (r *fakeAdminRepo) CreateAdmin(admin *domain.AdministratorRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins = append(r.admins, admin)
	return nil
}

func (r *fakeAdminRepo) GetAdminByID(adminID string) (*domain.AdministratorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.ID == adminID {
			return admin, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrAdminNotFound, adminID)
}

func (r *fakeAdminRepo) GetAdminByWallet(wallet string) (*domain.AdministratorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.WalletAddress == wallet {
			return admin, nil
		}
	}
	return nil, fmt.Errorf("%w: wallet %s", domain.ErrAdminNotFound, wallet)
}

func (r *fakeAdminRepo) GetAdminByReferralCode(code string) (*domain.AdministratorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.ReferralCode == code {
			return admin, nil
		}
	}
	return nil, fmt.Errorf("%w: referral code %s", domain.ErrAdminNotFound, code)
}

func (r *fakeAdminRepo) GetActiveAdmins() ([]*domain.AdministratorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []*domain.AdministratorRecord
	for _, admin := range r.admins {
		if admin.Active() {
			active = append(active, admin)
		}
	}
	return active, nil
}

func (r *fakeAdminRepo) GetAllAdmins() ([]*domain.AdministratorRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.AdministratorRecord{}, r.admins...), nil
}

func (r *fakeAdminRepo) UpdateAdminRole(adminID string, role domain.Role) error {
	admin, err := r.GetAdminByID(adminID)
	if err != nil {
		return err
	}
	admin.Role = role
	admin.Permissions = domain.PermissionsFor(role)
	return nil
}

func (r *fakeAdminRepo) UpdateAdminStatus(adminID string, status domain.AdminStatus) error {
	admin, err := r.GetAdminByID(adminID)
	if err != nil {
		return err
	}
	admin.Status = status
	return nil
}

func (r *fakeAdminRepo) UpdateAdminFeeShare(adminID string, percent float64) error {
	admin, err := r.GetAdminByID(adminID)
	if err != nil {
		return err
	}
	admin.FeeSharePercent = percent
	return nil
}

type fakePayoutRepo struct {
	mu        sync.Mutex
	saved     map[string]*domain.PayoutResult
	records   []*domain.EarningsRecord
	saveCalls int
}

func newFakePayoutRepo() *fakePayoutRepo {
	return &fakePayoutRepo{saved: make(map[string]*domain.PayoutResult)}
}

func (r *fakePayoutRepo) SavePayout(result *domain.PayoutResult, records []*domain.EarningsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if _, ok := r.saved[result.EventID]; ok {
		return domain.ErrDuplicateEvent
	}
	stored := *result
	r.saved[result.EventID] = &stored
	r.records = append(r.records, records...)
	return nil
}

func (r *fakePayoutRepo) GetPayoutByEventID(eventID string) (*domain.PayoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.saved[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: event %s", domain.ErrRecordNotFound, eventID)
	}
	copied := *stored
	return &copied, nil
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	records []*domain.EarningsRecord
}

func newFakeLedgerRepo(records ...*domain.EarningsRecord) *fakeLedgerRepo {
	return &fakeLedgerRepo{records: records}
}

func (r *fakeLedgerRepo) CreateRecord(record *domain.EarningsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *fakeLedgerRepo) GetRecordByID(recordID string) (*domain.EarningsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == recordID {
			return record, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, recordID)
}

func (r *fakeLedgerRepo) GetRecords(filter domain.EarningsFilter) ([]*domain.EarningsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.EarningsRecord
	for _, record := range r.records {
		if filter.AdminID != "" && record.AdminID != filter.AdminID {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		if !filter.Since.IsZero() && record.CreatedAt.Before(filter.Since) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (r *fakeLedgerRepo) UpdateRecordStatus(recordID string, status domain.EarningsStatus, settlementRef string) error {
	record, err := r.GetRecordByID(recordID)
	if err != nil {
		return err
	}
	record.Status = status
	if settlementRef != "" {
		record.SettlementRef = settlementRef
	}
	record.UpdatedAt = time.Now()
	return nil
}

func (r *fakeLedgerRepo) SumByStatusSince(status domain.EarningsStatus, since time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0.0
	for _, record := range r.records {
		if record.Status != status {
			continue
		}
		if !since.IsZero() && record.CreatedAt.Before(since) {
			continue
		}
		total += record.Amount
	}
	return total, nil
}
