package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	admindto "github.com/roguedev-ai/tokenmarket-revenue-service/internal/usecase/dto/admin"
)

type DirectoryUsecase interface {
	InviteAdmin(input *admindto.InviteAdminInput) (*domain.AdministratorRecord, error)
	ChangeRole(input *admindto.ChangeRoleInput) error
	ChangeStatus(input *admindto.ChangeStatusInput) error
	SetFeeShare(input *admindto.SetFeeShareInput) error
	GetAdmin(adminID string) (*domain.AdministratorRecord, error)
	GetAdminByWallet(wallet string) (*domain.AdministratorRecord, error)
	ListAdmins() ([]*domain.AdministratorRecord, error)
}

type DefaultDirectoryUsecase struct {
	adminRepo    domain.AdminRepository
	generateCode func() string
}

func NewDefaultDirectoryUsecase(adminRepo domain.AdminRepository) (*DefaultDirectoryUsecase, error) {
	codeGenerator, err := nanoid.CustomASCII("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", 8)
	if err != nil {
		return nil, fmt.Errorf("creating referral code generator: %w", err)
	}
	return &DefaultDirectoryUsecase{
		adminRepo:    adminRepo,
		generateCode: codeGenerator,
	}, nil
}

// InviteAdmin creates a new active administrator after the hierarchy check.
// A disallowed invitee role fails outright; the requested role is never
// silently downgraded.
func (uc *DefaultDirectoryUsecase) InviteAdmin(input *admindto.InviteAdminInput) (*domain.AdministratorRecord, error) {
	actor, err := uc.adminRepo.GetAdminByID(input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("loading inviter %s: %w", input.ActorID, err)
	}
	if !actor.Active() {
		return nil, fmt.Errorf("%w: inviter %s is not active", domain.ErrPermissionDenied, actor.ID)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: role %q", domain.ErrConfiguration, input.Role)
	}
	if !domain.CanInvite(actor.Role, input.Role) {
		return nil, fmt.Errorf("%w: role %s may not invite role %s", domain.ErrPermissionDenied, actor.Role, input.Role)
	}
	if input.FeeSharePercent < 0 || input.FeeSharePercent > 100 {
		return nil, fmt.Errorf("%w: fee share %v", domain.ErrInvalidAmount, input.FeeSharePercent)
	}
	if input.Role == domain.RoleLead {
		if err := uc.ensureNoActiveLead(""); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	admin := &domain.AdministratorRecord{
		ID:              uuid.NewString(),
		WalletAddress:   input.WalletAddress,
		DisplayName:     input.DisplayName,
		Role:            input.Role,
		Status:          domain.AdminActive,
		FeeSharePercent: input.FeeSharePercent,
		ReferralCode:    uc.generateCode(),
		InvitedBy:       actor.ID,
		Permissions:     domain.PermissionsFor(input.Role),
		JoinedAt:        now,
		UpdatedAt:       now,
	}
	if err := uc.adminRepo.CreateAdmin(admin); err != nil {
		return nil, fmt.Errorf("creating administrator: %w", err)
	}
	return admin, nil
}

// ChangeRole re-derives the target's whole permission set from the new
// role; nothing of the old set survives.
func (uc *DefaultDirectoryUsecase) ChangeRole(input *admindto.ChangeRoleInput) error {
	actor, target, err := uc.loadActorTarget(input.ActorID, input.TargetID)
	if err != nil {
		return err
	}
	if !domain.ValidRole(input.NewRole) {
		return fmt.Errorf("%w: role %q", domain.ErrConfiguration, input.NewRole)
	}
	if !domain.CanManage(actor.Role, target.Role) || !domain.CanInvite(actor.Role, input.NewRole) {
		return fmt.Errorf("%w: role %s may not assign role %s", domain.ErrPermissionDenied, actor.Role, input.NewRole)
	}
	if input.NewRole == domain.RoleLead && target.Role != domain.RoleLead {
		if err := uc.ensureNoActiveLead(target.ID); err != nil {
			return err
		}
	}
	return uc.adminRepo.UpdateAdminRole(target.ID, input.NewRole)
}

// ChangeStatus covers suspension and removal. Removal is a transition to
// inactive; records are never physically deleted.
func (uc *DefaultDirectoryUsecase) ChangeStatus(input *admindto.ChangeStatusInput) error {
	actor, target, err := uc.loadActorTarget(input.ActorID, input.TargetID)
	if err != nil {
		return err
	}
	switch input.NewStatus {
	case domain.AdminActive, domain.AdminInactive, domain.AdminSuspended:
	default:
		return fmt.Errorf("%w: status %q", domain.ErrConfiguration, input.NewStatus)
	}
	if !domain.CanManage(actor.Role, target.Role) {
		return fmt.Errorf("%w: role %s may not manage role %s", domain.ErrPermissionDenied, actor.Role, target.Role)
	}
	return uc.adminRepo.UpdateAdminStatus(target.ID, input.NewStatus)
}

func (uc *DefaultDirectoryUsecase) SetFeeShare(input *admindto.SetFeeShareInput) error {
	actor, target, err := uc.loadActorTarget(input.ActorID, input.TargetID)
	if err != nil {
		return err
	}
	if !domain.CanManage(actor.Role, target.Role) {
		return fmt.Errorf("%w: role %s may not manage role %s", domain.ErrPermissionDenied, actor.Role, target.Role)
	}
	if target.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: fee share applies to the admin role only", domain.ErrInvalidAmount)
	}
	if input.FeeSharePercent < 0 || input.FeeSharePercent > 100 {
		return fmt.Errorf("%w: fee share %v", domain.ErrInvalidAmount, input.FeeSharePercent)
	}
	return uc.adminRepo.UpdateAdminFeeShare(target.ID, input.FeeSharePercent)
}

func (uc *DefaultDirectoryUsecase) GetAdmin(adminID string) (*domain.AdministratorRecord, error) {
	return uc.adminRepo.GetAdminByID(adminID)
}

func (uc *DefaultDirectoryUsecase) GetAdminByWallet(wallet string) (*domain.AdministratorRecord, error) {
	return uc.adminRepo.GetAdminByWallet(wallet)
}

func (uc *DefaultDirectoryUsecase) ListAdmins() ([]*domain.AdministratorRecord, error) {
	return uc.adminRepo.GetAllAdmins()
}

func (uc *DefaultDirectoryUsecase) loadActorTarget(actorID, targetID string) (*domain.AdministratorRecord, *domain.AdministratorRecord, error) {
	actor, err := uc.adminRepo.GetAdminByID(actorID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading actor %s: %w", actorID, err)
	}
	if !actor.Active() {
		return nil, nil, fmt.Errorf("%w: actor %s is not active", domain.ErrPermissionDenied, actor.ID)
	}
	target, err := uc.adminRepo.GetAdminByID(targetID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading target %s: %w", targetID, err)
	}
	return actor, target, nil
}

func (uc *DefaultDirectoryUsecase) ensureNoActiveLead(exceptID string) error {
	admins, err := uc.adminRepo.GetActiveAdmins()
	if err != nil {
		return fmt.Errorf("loading active administrators: %w", err)
	}
	for _, admin := range admins {
		if admin.Role == domain.RoleLead && admin.ID != exceptID {
			return fmt.Errorf("%w: an active lead administrator already exists", domain.ErrConfiguration)
		}
	}
	return nil
}
