package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
)

// AuthService 注册/登录/注销。身份操作全部走 Provider 接口。
type AuthService struct {
	provider identity.Provider
	profiles repository.ProfileStore
}

func NewAuthService(provider identity.Provider, profiles repository.ProfileStore) *AuthService {
	return &AuthService{provider: provider, profiles: profiles}
}

// LoginResult 登录成功的返回：令牌 + 新鲜读取的资料行。
// 被封禁的用户仍可登录成功，但除封禁状态页外的一切操作会被门禁拦截。
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Profile   model.Profile `json:"profile"`
}

// Register 自助注册：身份账号 + 同 ID 资料行，默认 user 角色。
// 资料写入失败时回删账号，避免留下能登录却没有资料的半成品。
func (s *AuthService) Register(ctx context.Context, email string, password string) (*identity.Identity, error) {
	ident, err := s.provider.SignUp(ctx, email, password)
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
		log.Printf("注册资料创建失败，回删身份账号: %v, id=%s", err, ident.ID)
		if delErr := s.provider.AdminDeleteUser(ctx, ident.ID); delErr != nil {
			return nil, common.NewInternalError(
				fmt.Sprintf("注册失败且补偿删除未成功，存在孤儿账号 %s: %v", ident.ID, delErr))
		}
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	return ident, nil
}

// Login 登录并返回资料行。资料行缺失时降级为普通用户视图，不报错。
func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(session.Identity.ID)
	if err != nil {
		// 一致性缺口：账号存在但资料缺失，按普通用户处理
		profile = &model.Profile{
			ID:       session.Identity.ID,
			Email:    session.Identity.Email,
			Role:     consts.RoleUser,
			IsBanned: false,
		}
	}

	return &LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Profile:   *profile,
	}, nil
}

// Logout 注销会话。
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.provider.SignOut(ctx, token)
}
