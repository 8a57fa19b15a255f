package mappers

import (
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
)

func ToDomainAdmin(model *models.AdministratorModel) *domain.AdministratorRecord {
	role := domain.Role(model.Role)
	return &domain.AdministratorRecord{
		ID:              model.ID,
		WalletAddress:   model.WalletAddress,
		DisplayName:     model.DisplayName,
		Role:            role,
		Status:          domain.AdminStatus(model.Status),
		FeeSharePercent: model.FeeSharePercent,
		LifetimeEarned:  model.LifetimeEarned,
		ReferralCode:    model.ReferralCode,
		InvitedBy:       model.InvitedBy,
		// Permissions are never stored: they are re-derived from the role
		// so a role change can never leave a stale set behind.
		Permissions: domain.PermissionsFor(role),
		JoinedAt:    model.JoinedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMAdmin(admin *domain.AdministratorRecord) *models.AdministratorModel {
	return &models.AdministratorModel{
		ID:              admin.ID,
		WalletAddress:   admin.WalletAddress,
		DisplayName:     admin.DisplayName,
		Role:            string(admin.Role),
		Status:          string(admin.Status),
		FeeSharePercent: admin.FeeSharePercent,
		LifetimeEarned:  admin.LifetimeEarned,
		ReferralCode:    admin.ReferralCode,
		InvitedBy:       admin.InvitedBy,
		JoinedAt:        admin.JoinedAt,
		UpdatedAt:       admin.UpdatedAt,
	}
}
