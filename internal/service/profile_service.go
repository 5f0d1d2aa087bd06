package service

import (
	"errors"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"

	"gorm.io/gorm"
)

// ProfileService 资料行的读取与主体解析。
// 角色与封禁状态属于权限敏感数据：每次请求都重新查库，任何层面都不缓存。
type ProfileService struct {
	profiles repository.ProfileStore
}

func NewProfileService(profiles repository.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetProfile 按主键获取资料行，缺失时返回 NotFound。
func (s *ProfileService) GetProfile(id string) (*model.Profile, error) {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户资料不存在")
		}
		return nil, err
	}
	return profile, nil
}

// ResolvePrincipal 由身份信息解析出请求主体。
// 身份存在但资料行缺失是一种已知的一致性缺口：此时按普通用户处理，
// 绝不按管理员处理，也不让请求因此崩溃。
func (s *ProfileService) ResolvePrincipal(accountID string, email string) (authz.Principal, error) {
	profile, err := s.profiles.FindByID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return authz.Principal{
				ID:       accountID,
				Email:    email,
				Role:     consts.RoleUser,
				IsBanned: false,
			}, nil
		}
		return authz.Principal{}, err
	}

	return authz.Principal{
		ID:       profile.ID,
		Email:    profile.Email,
		Role:     profile.Role,
		IsBanned: profile.IsBanned,
	}, nil
}

// CreateProfile 为指定身份创建资料行。
func (s *ProfileService) CreateProfile(id string, email string, role string) (*model.Profile, error) {
	profile := model.Profile{
		ID:       id,
		Email:    email,
		Role:     role,
		IsBanned: false,
	}
	if err := s.profiles.Create(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
