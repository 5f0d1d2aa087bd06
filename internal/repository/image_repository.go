package repository

import (
	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/model"
)

// OwnerImageCount 按所有者汇总的图片数量，用于统计。
type OwnerImageCount struct {
	UserID string
	Count  int64
}

type ImageStore interface {
	Create(image *model.Image) error
	FindByID(id string) (*model.Image, error)
	List(scope authz.ListScope) ([]model.Image, error)
	UpdateFileName(id string, fileName string) (*model.Image, error)
	Delete(id string) error
	CountAll() (int64, error)
	SumAllSize() (int64, error)
	CountPerOwner(limit int) ([]OwnerImageCount, error)
}
