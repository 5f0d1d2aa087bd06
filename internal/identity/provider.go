package identity

import (
	"context"
	"time"
)

// Identity 身份提供方视角的账号。
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session 登录成功后签发的会话。
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Identity  Identity  `json:"identity"`
}

// Provider 身份提供方契约。业务层只认识该接口，
// 账号表、口令散列与令牌签发都是提供方的内部事务。
type Provider interface {
	// SignUp 自助注册。
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	// SignIn 口令登录，成功返回会话。
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignOut 注销会话。
	SignOut(ctx context.Context, token string) error
	// CurrentUser 根据会话令牌解析当前身份；令牌无效返回 Unauthorized。
	CurrentUser(ctx context.Context, token string) (*Identity, error)
	// AdminCreateUser 管理通道创建账号（不走注册限制）。
	AdminCreateUser(ctx context.Context, email, password string) (*Identity, error)
	// AdminDeleteUser 管理通道删除账号，用于资料写入失败后的补偿。
	AdminDeleteUser(ctx context.Context, id string) error
}
