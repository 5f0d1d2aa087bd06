package repository

import (
	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id string) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// List 按可见范围查询图片，按上传时间倒序。
// scope 由授权引擎计算，仓储层不再做任何权限判断。
func (r *ImageRepository) List(scope authz.ListScope) ([]model.Image, error) {
	var images []model.Image
	query := r.db.Model(&model.Image{})
	if scope.OwnerID != "" {
		query = query.Where("user_id = ?", scope.OwnerID)
	}
	if err := query.Order("uploaded_at desc").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) UpdateFileName(id string, fileName string) (*model.Image, error) {
	result := r.db.Model(&model.Image{}).Where("id = ?", id).Update("file_name", fileName)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *ImageRepository) Delete(id string) error {
	return r.db.Delete(&model.Image{}, "id = ?", id).Error
}

func (r *ImageRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ImageRepository) SumAllSize() (int64, error) {
	var total int64
	if err := r.db.Model(&model.Image{}).
		Select("COALESCE(SUM(file_size), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ImageRepository) CountPerOwner(limit int) ([]OwnerImageCount, error) {
	var rows []OwnerImageCount
	if err := r.db.Model(&model.Image{}).
		Select("user_id, COUNT(*) as count").
		Group("user_id").
		Order("count desc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
