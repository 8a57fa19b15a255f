package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/domain"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/mappers"
	"github.com/roguedev-ai/tokenmarket-revenue-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAdminRepository struct {
	DB *gorm.DB
}

func NewDefaultAdminRepository(db *gorm.DB) *DefaultAdminRepository {
	return &DefaultAdminRepository{
		DB: db,
	}
}

func (r *DefaultAdminRepository) CreateAdmin(admin *domain.AdministratorRecord) error {
	model := mappers.ToGORMAdmin(admin)
	return r.DB.Create(model).Error
}

func (r *DefaultAdminRepository) GetAdminByID(adminID string) (*domain.AdministratorRecord, error) {
	var model models.AdministratorModel
	if err := r.DB.Where("id = ?", adminID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAdminNotFound, adminID)
		}
		return nil, err
	}
	return mappers.ToDomainAdmin(&model), nil
}

func (r *DefaultAdminRepository) GetAdminByWallet(wallet string) (*domain.AdministratorRecord, error) {
	var model models.AdministratorModel
	if err := r.DB.Where("wallet_address = ?", wallet).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wallet %s", domain.ErrAdminNotFound, wallet)
		}
		return nil, err
	}
	return mappers.ToDomainAdmin(&model), nil
}

func (r *DefaultAdminRepository) GetAdminByReferralCode(code string) (*domain.AdministratorRecord, error) {
	var model models.AdministratorModel
	if err := r.DB.Where("referral_code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: referral code %s", domain.ErrAdminNotFound, code)
		}
		return nil, err
	}
	return mappers.ToDomainAdmin(&model), nil
}

func (r *DefaultAdminRepository) GetActiveAdmins() ([]*domain.AdministratorRecord, error) {
	return r.listWhere("status = ?", string(domain.AdminActive))
}

func (r *DefaultAdminRepository) GetAllAdmins() ([]*domain.AdministratorRecord, error) {
	return r.listWhere("1 = 1")
}

func (r *DefaultAdminRepository) listWhere(query string, args ...interface{}) ([]*domain.AdministratorRecord, error) {
	var adminModels []models.AdministratorModel
	if err := r.DB.Where(query, args...).Order("joined_at ASC").Find(&adminModels).Error; err != nil {
		return nil, err
	}
	admins := make([]*domain.AdministratorRecord, len(adminModels))
	for i, model := range adminModels {
		admins[i] = mappers.ToDomainAdmin(&model)
	}
	return admins, nil
}

func (r *DefaultAdminRepository) UpdateAdminRole(adminID string, role domain.Role) error {
	return r.update(adminID, map[string]interface{}{
		"role": string(role),
	})
}

func (r *DefaultAdminRepository) UpdateAdminStatus(adminID string, status domain.AdminStatus) error {
	return r.update(adminID, map[string]interface{}{
		"status": string(status),
	})
}

func (r *DefaultAdminRepository) UpdateAdminFeeShare(adminID string, percent float64) error {
	return r.update(adminID, map[string]interface{}{
		"fee_share_percent": percent,
	})
}

func (r *DefaultAdminRepository) update(adminID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.DB.Model(&models.AdministratorModel{}).
		Where("id = ?", adminID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAdminNotFound, adminID)
	}
	return nil
}
