package domain

type Role string

const (
	RoleLead      Role = "lead"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleSupport   Role = "support"
)

func ValidRole(role Role) bool {
	switch role {
	case RoleLead, RoleAdmin, RoleModerator, RoleSupport:
		return true
	}
	return false
}

type Capability string

const (
	CapUserManagement       Capability = "userManagement"
	CapPricingManagement    Capability = "pricingManagement"
	CapAnalytics            Capability = "analytics"
	CapSettings             Capability = "settings"
	CapContentModeration    Capability = "contentModeration"
	CapTokenManagement      Capability = "tokenManagement"
	CapWarnings             Capability = "warnings"
	CapBans                 Capability = "bans"
	CapRevenueVisibility    Capability = "revenueVisibility"
	CapPaymentManagement    Capability = "paymentManagement"
	CapDisbursementApproval Capability = "disbursementApproval"
	CapFinancialReporting   Capability = "financialReporting"
	CapTechnicalSupport     Capability = "technicalSupport"
	CapSystemMonitoring     Capability = "systemMonitoring"
	CapDataExport           Capability = "dataExport"
	CapEmergencyControls    Capability = "emergencyControls"
)

var AllCapabilities = []Capability{
	CapUserManagement,
	CapPricingManagement,
	CapAnalytics,
	CapSettings,
	CapContentModeration,
	CapTokenManagement,
	CapWarnings,
	CapBans,
	CapRevenueVisibility,
	CapPaymentManagement,
	CapDisbursementApproval,
	CapFinancialReporting,
	CapTechnicalSupport,
	CapSystemMonitoring,
	CapDataExport,
	CapEmergencyControls,
}

type PermissionSet map[Capability]bool

func (s PermissionSet) Has(cap Capability) bool {
	return s[cap]
}

func (s PermissionSet) List() []Capability {
	caps := make([]Capability, 0, len(s))
	for _, cap := range AllCapabilities {
		if s[cap] {
			caps = append(caps, cap)
		}
	}
	return caps
}

// rolePermissions is the canonical role-to-capability table. It is data, not
// behavior: no other component may redefine it at runtime.
var rolePermissions = map[Role][]Capability{
	RoleLead: AllCapabilities,
	RoleAdmin: {
		CapUserManagement,
		CapPricingManagement,
		CapAnalytics,
		CapSettings,
		CapTokenManagement,
		CapRevenueVisibility,
		CapPaymentManagement,
		CapDisbursementApproval,
		CapFinancialReporting,
		CapDataExport,
	},
	RoleModerator: {
		CapContentModeration,
		CapTokenManagement,
		CapWarnings,
		CapBans,
		CapAnalytics,
	},
	RoleSupport: {
		CapTechnicalSupport,
		CapSystemMonitoring,
	},
}

// PermissionsFor returns the permission set of a role. The returned set is a
// fresh copy so callers cannot mutate the canonical table.
func PermissionsFor(role Role) PermissionSet {
	caps := rolePermissions[role]
	set := make(PermissionSet, len(caps))
	for _, cap := range caps {
		set[cap] = true
	}
	return set
}

// HasPermission derives the answer from the administrator's current role on
// every call. It is never cached per administrator, so a role change takes
// effect immediately.
func HasPermission(admin *AdministratorRecord, cap Capability) bool {
	if admin == nil {
		return false
	}
	return PermissionsFor(admin.Role).Has(cap)
}

// CanManage is a fixed 4x4 table rather than a numeric rank comparison:
// admins are deliberately barred from managing other admins or the lead.
func CanManage(actor, target Role) bool {
	switch actor {
	case RoleLead:
		return ValidRole(target)
	case RoleAdmin:
		return target == RoleModerator || target == RoleSupport
	default:
		return false
	}
}

func CanInvite(actorRole, inviteeRole Role) bool {
	if !ValidRole(inviteeRole) {
		return false
	}
	switch actorRole {
	case RoleLead:
		return true
	case RoleAdmin:
		return inviteeRole == RoleModerator || inviteeRole == RoleSupport
	case RoleModerator:
		return inviteeRole == RoleSupport
	default:
		return false
	}
}
