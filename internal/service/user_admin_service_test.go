package service

import (
	"context"
	"testing"

	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/db"
	"photo-vault-server/internal/model"

	"github.com/google/uuid"
)

// 测试内容：验证用户列表仅含非管理员，且需要管理员权限。
func TestListUsers(t *testing.T) {
	env := setupTest(t)
	admin := seedProfile(t, "a1", "admin@example.com", consts.RoleAdmin, false)
	alice := seedProfile(t, "u1", "alice@example.com", consts.RoleUser, false)
	seedProfile(t, "u2", "bob@example.com", consts.RoleUser, true)

	users, err := env.services.AdminUser.ListUsers(admin)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("期望 2 个普通用户，实际为 %d", len(users))
	}
	for _, u := range users {
		if u.Role == consts.RoleAdmin {
			t.Fatalf("列表不应包含管理员: %+v", u)
		}
	}

	_, err = env.services.AdminUser.ListUsers(alice)
	assertServiceErrorCode(t, err, common.ErrorCodeForbidden)
}

// 测试内容：验证管理通道创建用户得到 user 角色，且普通用户无权调用。
func TestAdminCreateUser(t *testing.T) {
	env := setupTest(t)
	admin := seedProfile(t, "a1", "admin@example.com", consts.RoleAdmin, false)
	alice := seedProfile(t, "u1", "alice@example.com", consts.RoleUser, false)

	ident, err := env.services.AdminUser.CreateUser(context.Background(), admin, "new@example.com", "secret1")
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	var profile model.Profile
	if err := db.DB.First(&profile, "id = ?", ident.ID).Error; err != nil {
		t.Fatalf("加载资料行失败: %v", err)
	}
	if profile.Role != consts.RoleUser {
		t.Fatalf("管理通道创建的也必须是 user 角色，实际为 %q", profile.Role)
	}

	_, err = env.services.AdminUser.CreateUser(context.Background(), alice, "x@example.com", "secret1")
	assertServiceErrorCode(t, err, common.ErrorCodeForbidden)
}

// 测试内容：验证封禁/解封流转，管理员目标被拒绝且其行保持不变。
func TestBanUser(t *testing.T) {
	env := setupTest(t)
	admin := seedProfile(t, "a1", "admin@example.com", consts.RoleAdmin, false)
	seedProfile(t, "a2", "admin2@example.com", consts.RoleAdmin, false)
	seedProfile(t, "u1", "alice@example.com", consts.RoleUser, false)

	// 封禁
	updated, err := env.services.AdminUser.BanUser(context.Background(), admin, "u1", true)
	if err != nil {
		t.Fatalf("封禁失败: %v", err)
	}
	if !updated.IsBanned {
		t.Fatal("期望封禁生效")
	}

	// 解封
	updated, err = env.services.AdminUser.BanUser(context.Background(), admin, "u1", false)
	if err != nil {
		t.Fatalf("解封失败: %v", err)
	}
	if updated.IsBanned {
		t.Fatal("期望解封生效")
	}

	// 管理员不可成为封禁目标
	_, err = env.services.AdminUser.BanUser(context.Background(), admin, "a2", true)
	assertServiceErrorCode(t, err, common.ErrorCodeForbidden)

	var target model.Profile
	if err := db.DB.First(&target, "id = ?", "a2").Error; err != nil {
		t.Fatalf("加载资料行失败: %v", err)
	}
	if target.IsBanned {
		t.Fatal("被拒绝的封禁不应触碰目标行")
	}

	// 目标缺失返回 NotFound
	_, err = env.services.AdminUser.BanUser(context.Background(), admin, uuid.New().String(), true)
	assertServiceErrorCode(t, err, common.ErrorCodeNotFound)
}
