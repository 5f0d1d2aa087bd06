package repository

import "photo-vault-server/internal/model"

type ProfileStore interface {
	FindByID(id string) (*model.Profile, error)
	FindByIDs(ids []string) ([]model.Profile, error)
	Create(profile *model.Profile) error
	UpdateBanState(id string, banned bool) (*model.Profile, error)
	ListNonAdmins() ([]model.Profile, error)
	CountByRole(role string) (int64, error)
	CountBannedByRole(role string) (int64, error)
	CountAdmins() (int64, error)
	Delete(id string) error
}
