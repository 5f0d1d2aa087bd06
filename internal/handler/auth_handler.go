package handler

import (
	"net/http"
	"strings"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	ident, err := h.services.Auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "注册成功",
		"id":      ident.ID,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "登录成功",
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"profile":    result.Profile,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "缺少会话令牌"})
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), token); err != nil {
		httpx.WriteServiceError(c, err, "注销失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已注销"})
}
