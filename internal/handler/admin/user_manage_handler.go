package admin

import (
	"net/http"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/dto"
	"photo-vault-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GetUserList 获取普通用户列表，管理员不出现在结果里
func (h *Handler) GetUserList(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	users, err := h.services.AdminUser.ListUsers(p)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"list":    users,
		"total":   len(users),
	})
}

// CreateUser 管理员直接创建普通用户账号
func (h *Handler) CreateUser(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	ident, err := h.services.AdminUser.CreateUser(c.Request.Context(), p, req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "创建成功",
		"id":      ident.ID,
	})
}

// BanUser 封禁或解封指定用户，管理员账号不可被封禁
func (h *Handler) BanUser(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	var req dto.BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	profile, err := h.services.AdminUser.BanUser(c.Request.Context(), p, req.UserID, *req.IsBanned)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新封禁状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
