package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"

	"gorm.io/gorm"
)

// AdminUserService 后台用户管理：列表、创建、封禁。
type AdminUserService struct {
	profiles repository.ProfileStore
	provider identity.Provider
}

func NewAdminUserService(profiles repository.ProfileStore, provider identity.Provider) *AdminUserService {
	return &AdminUserService{profiles: profiles, provider: provider}
}

// ListUsers 列出全部非管理员用户，按创建时间倒序。
func (s *AdminUserService) ListUsers(actor authz.Principal) ([]model.Profile, error) {
	if err := authz.CanCreateManagedUser(actor); err != nil {
		return nil, err
	}
	return s.profiles.ListNonAdmins()
}

// CreateUser 管理通道创建用户：先建身份账号，再建资料行。
// 资料写入失败时尽力删除刚建的账号做补偿；补偿本身失败则把
// 不一致如实上抛，不做掩盖。
func (s *AdminUserService) CreateUser(ctx context.Context, actor authz.Principal, email string, password string) (*identity.Identity, error) {
	if err := authz.CanCreateManagedUser(actor); err != nil {
		return nil, err
	}

	ident, err := s.provider.AdminCreateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile := model.Profile{
		ID:       ident.ID,
		Email:    ident.Email,
		Role:     consts.RoleUser,
		IsBanned: false,
	}
	if err := s.profiles.Create(&profile); err != nil {
		log.Printf("资料创建失败，回删身份账号: %v, id=%s", err, ident.ID)
		if delErr := s.provider.AdminDeleteUser(ctx, ident.ID); delErr != nil {
			return nil, common.NewInternalError(
				fmt.Sprintf("用户资料创建失败且补偿删除未成功，存在孤儿账号 %s: %v", ident.ID, delErr))
		}
		return nil, common.NewInternalError("用户资料创建失败")
	}

	return ident, nil
}

// BanUser 封禁或解封目标用户。目标为管理员时直接拒绝，不触碰任何行。
func (s *AdminUserService) BanUser(ctx context.Context, actor authz.Principal, targetID string, banned bool) (*model.Profile, error) {
	targetProfile, err := s.profiles.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("目标用户不存在")
		}
		return nil, err
	}

	target := authz.Principal{
		ID:       targetProfile.ID,
		Email:    targetProfile.Email,
		Role:     targetProfile.Role,
		IsBanned: targetProfile.IsBanned,
	}
	if err := authz.CanBanUser(actor, target); err != nil {
		return nil, err
	}

	updated, err := s.profiles.UpdateBanState(targetID, banned)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("目标用户不存在")
		}
		return nil, err
	}
	return updated, nil
}
