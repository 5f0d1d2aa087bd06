package identity

import (
	"context"
	"errors"
	"log"
	"time"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/config"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// GormProvider 内置身份提供方：账号表 + bcrypt + JWT 会话。
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (p *GormProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	return p.createAccount(ctx, email, password)
}

func (p *GormProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var account model.Account
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("邮箱或密码错误")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, common.NewUnauthorizedError("邮箱或密码错误")
	}

	cfg := config.Get()
	duration := time.Hour * time.Duration(cfg.JWT.ExpirationHours)
	token, err := utils.GenerateSessionToken(account.ID, account.Email, duration)
	if err != nil {
		log.Printf("签发会话令牌失败: %v", err)
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(duration),
		Identity:  toIdentity(&account),
	}, nil
}

// SignOut 会话是无状态 JWT，服务端不保留会话记录，
// 注销由客户端丢弃令牌完成；在此仅校验令牌形态。
func (p *GormProvider) SignOut(ctx context.Context, token string) error {
	if _, err := utils.ParseSessionToken(token); err != nil {
		return common.NewUnauthorizedError("无效的会话令牌")
	}
	return nil
}

func (p *GormProvider) CurrentUser(ctx context.Context, token string) (*Identity, error) {
	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return nil, common.NewUnauthorizedError("会话无效或已过期")
	}

	var account model.Account
	if err := p.db.WithContext(ctx).First(&account, "id = ?", claims.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("账号不存在")
		}
		return nil, err
	}

	identity := toIdentity(&account)
	return &identity, nil
}

func (p *GormProvider) AdminCreateUser(ctx context.Context, email, password string) (*Identity, error) {
	return p.createAccount(ctx, email, password)
}

func (p *GormProvider) AdminDeleteUser(ctx context.Context, id string) error {
	result := p.db.WithContext(ctx).Delete(&model.Account{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.NewNotFoundError("账号不存在")
	}
	return nil
}

func (p *GormProvider) createAccount(ctx context.Context, email, password string) (*Identity, error) {
	if len(password) < minPasswordLength {
		return nil, common.NewValidationError("密码最少6位")
	}

	var count int64
	if err := p.db.WithContext(ctx).Model(&model.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.NewConflictError("邮箱已被注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := model.Account{
		ID:       uuid.New().String(),
		Email:    email,
		Password: string(hashed),
	}
	if err := p.db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}

	identity := toIdentity(&account)
	return &identity, nil
}

func toIdentity(account *model.Account) Identity {
	return Identity{
		ID:        account.ID,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}
