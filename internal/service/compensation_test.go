package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/db"
	"photo-vault-server/internal/identity"
	"photo-vault-server/internal/model"
	"photo-vault-server/internal/repository"
)

// failingProfileStore 包装真实仓储，资料行写入一律失败。
type failingProfileStore struct {
	repository.ProfileStore
}

func (f *failingProfileStore) Create(profile *model.Profile) error {
	return errors.New("simulated profile insert failure")
}

// stuckDeleteProvider 包装真实 Provider，补偿删除也失败。
type stuckDeleteProvider struct {
	identity.Provider
}

func (p *stuckDeleteProvider) AdminDeleteUser(ctx context.Context, id string) error {
	return errors.New("simulated delete failure")
}

func countAccounts(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.DB.Model(&model.Account{}).Count(&count).Error; err != nil {
		t.Fatalf("统计账号失败: %v", err)
	}
	return count
}

// 测试内容：验证注册时资料行写入失败会回删刚建的身份账号，
// 不留下能登录却没有资料的半成品。
func TestRegister_ProfileFailureRollsBackAccount(t *testing.T) {
	env := setupTest(t)

	auth := NewAuthService(env.provider, &failingProfileStore{ProfileStore: env.repos.Profile})
	_, err := auth.Register(context.Background(), "a@example.com", "secret1")
	assertServiceErrorCode(t, err, common.ErrorCodeInternal)

	if got := countAccounts(t); got != 0 {
		t.Fatalf("期望回删后账号数为 0，实际为 %d", got)
	}
	if _, err := env.provider.SignIn(context.Background(), "a@example.com", "secret1"); err == nil {
		t.Fatal("回删后的账号不应还能登录")
	}
}

// 测试内容：验证注册的补偿删除本身失败时，错误如实标出孤儿账号 ID，
// 账号行仍留在库中而非被掩盖。
func TestRegister_CompensationFailureSurfacesOrphan(t *testing.T) {
	env := setupTest(t)

	auth := NewAuthService(
		&stuckDeleteProvider{Provider: env.provider},
		&failingProfileStore{ProfileStore: env.repos.Profile})
	_, err := auth.Register(context.Background(), "a@example.com", "secret1")
	serviceErr := assertServiceErrorCode(t, err, common.ErrorCodeInternal)

	var account model.Account
	if err := db.DB.First(&account, "email = ?", "a@example.com").Error; err != nil {
		t.Fatalf("期望孤儿账号仍在库中: %v", err)
	}
	if !strings.Contains(serviceErr.Message, account.ID) {
		t.Fatalf("期望错误信息包含孤儿账号 ID %q，实际为 %q", account.ID, serviceErr.Message)
	}
}

// 测试内容：验证管理通道创建用户时资料行写入失败同样回删账号。
func TestAdminCreateUser_ProfileFailureRollsBackAccount(t *testing.T) {
	env := setupTest(t)
	admin := seedProfile(t, "admin1", "admin@example.com", consts.RoleAdmin, false)

	svc := NewAdminUserService(&failingProfileStore{ProfileStore: env.repos.Profile}, env.provider)
	_, err := svc.CreateUser(context.Background(), admin, "b@example.com", "secret1")
	assertServiceErrorCode(t, err, common.ErrorCodeInternal)

	if got := countAccounts(t); got != 0 {
		t.Fatalf("期望回删后账号数为 0，实际为 %d", got)
	}
}

// 测试内容：验证首次初始化时资料行写入失败会回删账号，
// 系统保持未初始化状态，可重试成功。
func TestInitializeSystem_ProfileFailureRollsBackAccount(t *testing.T) {
	env := setupTest(t)

	broken := NewInitService(&failingProfileStore{ProfileStore: env.repos.Profile}, env.provider)
	_, err := broken.InitializeSystem(context.Background(), "root@example.com", "secret1")
	assertServiceErrorCode(t, err, common.ErrorCodeInternal)

	if got := countAccounts(t); got != 0 {
		t.Fatalf("期望回删后账号数为 0，实际为 %d", got)
	}

	initialized, err := env.services.Init.IsInitialized()
	if err != nil {
		t.Fatalf("查询初始化状态失败: %v", err)
	}
	if initialized {
		t.Fatal("失败的初始化不应把系统置为已初始化")
	}

	if _, err := env.services.Init.InitializeSystem(context.Background(), "root@example.com", "secret1"); err != nil {
		t.Fatalf("回删后重试初始化应成功: %v", err)
	}
}
