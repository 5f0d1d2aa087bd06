package handler

import (
	"net/http"
	"sync"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/dto"

	"github.com/gin-gonic/gin"
)

var initLock sync.Mutex

// GetInitState 查询系统是否已初始化（是否存在管理员）
func (h *Handler) GetInitState(c *gin.Context) {
	initialized, err := h.services.Init.IsInitialized()
	if err != nil {
		httpx.WriteServiceError(c, err, "查询初始化状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "initialized": initialized})
}

// Init 创建首个管理员，仅在系统未初始化时允许
func (h *Handler) Init(c *gin.Context) {
	// 加锁防止竞态条件
	initLock.Lock()
	defer initLock.Unlock()

	var req dto.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	ident, err := h.services.Init.InitializeSystem(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "初始化失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "初始化成功",
		"id":      ident.ID,
	})
}
