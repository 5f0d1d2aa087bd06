package service

import (
	"context"
	"fmt"
	"log"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
)

// InitService 首次运行初始化：创建第一个管理员。
// 这是系统内唯一能产生 admin 角色的入口，完成后自动关闭。
type InitService struct {
	profiles repository.ProfileStore
	provider identity.Provider
}

func NewInitService(profiles repository.ProfileStore, provider identity.Provider) *InitService {
	return &InitService{profiles: profiles, provider: provider}
}

// IsInitialized 是否已存在管理员。
func (s *InitService) IsInitialized() (bool, error) {
	count, err := s.profiles.CountAdmins()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InitializeSystem 创建首个管理员账号与资料行。
// 已初始化时返回 Conflict；资料写入失败同样执行账号回删补偿。
func (s *InitService) InitializeSystem(ctx context.Context, email string, password string) (*identity.Identity, error) {
	initialized, err := s.IsInitialized()
	if err != nil {
		return nil, err
	}
	if initialized {
		return nil, common.NewConflictError("系统已完成初始化")
	}

	ident, err := s.provider.AdminCreateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile := model.Profile{
		ID:       ident.ID,
		Email:    ident.Email,
		Role:     consts.RoleAdmin,
		IsBanned: false,
	}
	if err := s.profiles.Create(&profile); err != nil {
		log.Printf("管理员资料创建失败，回删身份账号: %v, id=%s", err, ident.ID)
		if delErr := s.provider.AdminDeleteUser(ctx, ident.ID); delErr != nil {
			return nil, common.NewInternalError(
				fmt.Sprintf("初始化失败且补偿删除未成功，存在孤儿账号 %s: %v", ident.ID, delErr))
		}
		return nil, common.NewInternalError("初始化失败，请稍后重试")
	}

	return ident, nil
}
