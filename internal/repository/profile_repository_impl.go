package repository

import (
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func (r *ProfileRepository) FindByID(id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByIDs(ids []string) ([]model.Profile, error) {
	var profiles []model.Profile
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

// UpdateBanState 更新封禁标记并返回更新后的行。
func (r *ProfileRepository) UpdateBanState(id string, banned bool) (*model.Profile, error) {
	result := r.db.Model(&model.Profile{}).Where("id = ?", id).Update("is_banned", banned)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *ProfileRepository) ListNonAdmins() ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.Where("role <> ?", consts.RoleAdmin).
		Order("created_at desc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) CountByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Profile{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepository) CountBannedByRole(role string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Profile{}).
		Where("role = ? AND is_banned = ?", role, true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepository) CountAdmins() (int64, error) {
	return r.CountByRole(consts.RoleAdmin)
}

func (r *ProfileRepository) Delete(id string) error {
	return r.db.Delete(&model.Profile{}, "id = ?", id).Error
}
