package domain

import "time"

type AdminStatus string

const (
	AdminActive    AdminStatus = "active"
	AdminInactive  AdminStatus = "inactive"
	AdminSuspended AdminStatus = "suspended"
)

// AdministratorRecord is never physically deleted: removal is a status
// transition to inactive. Permissions holds the set derived from Role for
// display; permission checks always re-derive from Role.
type AdministratorRecord struct {
	ID              string
	WalletAddress   string
	DisplayName     string
	Role            Role
	Status          AdminStatus
	FeeSharePercent float64
	LifetimeEarned  float64
	ReferralCode    string
	InvitedBy       string
	Permissions     PermissionSet
	JoinedAt        time.Time
	UpdatedAt       time.Time
}

func (a *AdministratorRecord) Active() bool {
	return a.Status == AdminActive
}

// EligibleForPool reports whether the administrator participates in the
// admin-pool split: active, admin role, positive configured share.
func (a *AdministratorRecord) EligibleForPool() bool {
	return a.Active() && a.Role == RoleAdmin && a.FeeSharePercent > 0
}

type AdminRepository interface {
	CreateAdmin(admin *AdministratorRecord) error
	GetAdminByID(adminID string) (*AdministratorRecord, error)
	GetAdminByWallet(wallet string) (*AdministratorRecord, error)
	GetAdminByReferralCode(code string) (*AdministratorRecord, error)
	GetActiveAdmins() ([]*AdministratorRecord, error)
	GetAllAdmins() ([]*AdministratorRecord, error)
	UpdateAdminRole(adminID string, role Role) error
	UpdateAdminStatus(adminID string, status AdminStatus) error
	UpdateAdminFeeShare(adminID string, percent float64) error
}
