package service

import (
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/repository"
	"photo-vault-server/internal/storage"
)

// Services 服务层装配。
type Services struct {
	Profile   *ProfileService
	Image     *ImageService
	AdminUser *AdminUserService
	Auth      *AuthService
	Stat      *StatService
	Init      *InitService
}

func NewServices(repos *repository.Repositories, provider identity.Provider, store storage.Store) *Services {
	return &Services{
		Profile:   NewProfileService(repos.Profile),
		Image:     NewImageService(repos.Image, repos.Profile, store),
		AdminUser: NewAdminUserService(repos.Profile, provider),
		Auth:      NewAuthService(provider, repos.Profile),
		Stat:      NewStatService(repos.Profile, repos.Image),
		Init:      NewInitService(repos.Profile, provider),
	}
}
