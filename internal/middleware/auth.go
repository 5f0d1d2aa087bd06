package middleware

import (
	"net/http"
	"strings"

	"photo-vault-server/internal/authz"
	"photo-vault-server/internal/consts"
	"photo-vault-server/internal/service"
	"photo-vault-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth 解析 Bearer 令牌并把身份信息写入上下文。
// 令牌缺失/无效一律视为匿名，在受保护路由上直接 401。
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseSessionToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set(consts.CtxAccountID, claims.ID)
		c.Set(consts.CtxAccountEmail, claims.Email)
		c.Next()
	}
}

// PrincipalResolver 在每次请求时从资料表新鲜读取角色与封禁状态。
// 令牌里不携带角色，资料也不做任何跨请求缓存——决策输入必须每次重取。
func PrincipalResolver(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetString(consts.CtxAccountID)
		if accountID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
			c.Abort()
			return
		}

		principal, err := profiles.ResolvePrincipal(accountID, c.GetString(consts.CtxAccountEmail))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "获取用户资料失败"})
			c.Abort()
			return
		}

		c.Set(consts.CtxPrincipal, principal)
		c.Next()
	}
}

// BanGate 封禁门禁：封禁用户除资料/封禁状态页外的一切操作都在此拦截。
func BanGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
			c.Abort()
			return
		}

		if authz.IsBanned(principal) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "账号已被封禁", "banned": true})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminCheck 管理员门禁。角色取自本次请求新鲜解析的主体，不信任令牌。
func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "需要管理员权限才能访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipal 从上下文取出已解析的主体。
func GetPrincipal(c *gin.Context) (authz.Principal, bool) {
	value, exists := c.Get(consts.CtxPrincipal)
	if !exists {
		return authz.Principal{}, false
	}
	principal, ok := value.(authz.Principal)
	return principal, ok
}
