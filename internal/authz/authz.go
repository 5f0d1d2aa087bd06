// Package authz 集中所有放行/拒绝决策。
// 每个判定都是 (角色, 封禁状态, 主体ID, 资源归属ID) 的纯函数，
// 不读库、不缓存，输入由调用方在同一请求内新鲜获取。
package authz

import (
	"photo-vault-server/internal/common"
	"photo-vault-server/internal/consts"
)

// Principal 发起请求的主体。零值表示匿名。
type Principal struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsBanned bool   `json:"is_banned"`
}

// Authenticated 是否为已认证主体。
func (p Principal) Authenticated() bool {
	return p.ID != ""
}

// IsAdmin 是否为管理员。
func (p Principal) IsAdmin() bool {
	return p.Role == consts.RoleAdmin
}

// ListScope 列表查询的行可见范围。OwnerID 为空表示全部可见。
type ListScope struct {
	OwnerID string
}

// CanCreateImage 已认证且未被封禁的主体可以创建图片。
func CanCreateImage(p Principal) error {
	if !p.Authenticated() {
		return common.NewUnauthorizedError("需要登录后才能上传")
	}
	if p.IsBanned {
		return common.NewForbiddenError("账号已被封禁")
	}
	return nil
}

// CanDeleteImage 本人或管理员可以删除图片。
func CanDeleteImage(p Principal, ownerID string) error {
	if !p.Authenticated() {
		return common.NewUnauthorizedError("需要登录后才能操作")
	}
	if p.ID == ownerID || p.IsAdmin() {
		return nil
	}
	return common.NewForbiddenError("无权删除此图片")
}

// CanUpdateImage 仅本人可以重命名图片。
// 管理员没有改名权限——改名与删除的权限集有意不对称，不要“修正”。
func CanUpdateImage(p Principal, ownerID string) error {
	if !p.Authenticated() {
		return common.NewUnauthorizedError("需要登录后才能操作")
	}
	if p.ID == ownerID {
		return nil
	}
	return common.NewForbiddenError("无权修改此图片")
}

// ScopeForList 计算列表查询的可见范围。
// 管理员可查看全部，并可通过 requestedUserID 收窄到指定用户；
// 普通用户永远只能看到自己的行，requestedUserID 静默忽略（不报错，直接无效）。
func ScopeForList(p Principal, requestedUserID string) ListScope {
	if p.IsAdmin() {
		return ListScope{OwnerID: requestedUserID}
	}
	return ListScope{OwnerID: p.ID}
}

// CanBanUser 管理员可以封禁/解封非管理员。管理员不可成为封禁目标。
func CanBanUser(actor Principal, target Principal) error {
	if !actor.IsAdmin() {
		return common.NewForbiddenError("需要管理员权限才能操作")
	}
	if target.IsAdmin() {
		return common.NewForbiddenError("不能封禁管理员账号")
	}
	return nil
}

// CanCreateManagedUser 仅管理员可以通过管理通道创建用户。
func CanCreateManagedUser(actor Principal) error {
	if !actor.IsAdmin() {
		return common.NewForbiddenError("需要管理员权限才能操作")
	}
	return nil
}

// IsBanned 封禁门禁。封禁主体除封禁状态页外的一切操作都应被拦截。
func IsBanned(p Principal) bool {
	return p.IsBanned
}
