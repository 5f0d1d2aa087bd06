package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	Profile ProfileStore
	Image   ImageStore
}

func NewProfileRepository(db *gorm.DB) ProfileStore {
	return &ProfileRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Profile: NewProfileRepository(db),
		Image:   NewImageRepository(db),
	}
}
