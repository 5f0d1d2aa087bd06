package service

import (
	"testing"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
)

// 测试内容：验证资料行读取与缺失时的 NotFound。
func TestGetProfile(t *testing.T) {
	env := setupTest(t)
	seedProfile(t, "u1", "a@example.com", consts.RoleUser, false)

	profile, err := env.services.Profile.GetProfile("u1")
	if err != nil {
		t.Fatalf("获取资料失败: %v", err)
	}
	if profile.Email != "a@example.com" {
		t.Fatalf("非预期资料行: %+v", profile)
	}

	_, err = env.services.Profile.GetProfile("missing")
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)
}

// 测试内容：验证主体解析每次反映资料表当前状态。
func TestResolvePrincipal_FreshRead(t *testing.T) {
	env := setupTest(t)
	seedProfile(t, "a1", "admin@example.com", consts.RoleAdmin, false)

	p, err := env.services.Profile.ResolvePrincipal("a1", "admin@example.com")
	if err != nil {
		t.Fatalf("解析主体失败: %v", err)
	}
	if !p.IsAdmin() {
		t.Fatalf("期望管理员主体，实际为 %+v", p)
	}
}

// 测试内容：验证资料行缺失时主体降级为普通用户，绝不按管理员处理。
func TestResolvePrincipal_MissingProfileDegradesToUser(t *testing.T) {
	env := setupTest(t)

	p, err := env.services.Profile.ResolvePrincipal("ghost", "ghost@example.com")
	if err != nil {
		t.Fatalf("期望降级而非报错，实际为 %v", err)
	}
	if p.IsAdmin() {
		t.Fatal("缺失资料的主体绝不能是管理员")
	}
	if p.Role != consts.RoleUser || p.IsBanned {
		t.Fatalf("期望未封禁的普通用户主体，实际为 %+v", p)
	}
	if p.ID != "ghost" {
		t.Fatalf("期望保留身份 ID，实际为 %q", p.ID)
	}
}
