package handler

import (
	"net/http"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GetProfile 返回当前登录用户的资料行
func (h *Handler) GetProfile(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	profile, err := h.services.Profile.GetProfile(p.ID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户资料失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GetBannedState 返回当前用户的封禁状态
// 该接口不经过封禁门禁，被封禁的用户靠它得知自己的处境
func (h *Handler) GetBannedState(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "banned": p.IsBanned})
}
