package admindto

import "github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"

type InviteAdminInput struct {
	ActorID         string
	WalletAddress   string
	DisplayName     string
	Role            domain.Role
	FeeSharePercent float64
}

type ChangeRoleInput struct {
	ActorID  string
	TargetID string
	NewRole  domain.Role
}

type ChangeStatusInput struct {
	ActorID   string
	TargetID  string
	NewStatus domain.AdminStatus
}

type SetFeeShareInput struct {
	ActorID         string
	TargetID        string
	FeeSharePercent float64
}
