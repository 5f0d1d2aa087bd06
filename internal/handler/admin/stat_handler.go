package admin

import (
	"net/http"

	"photo-vault-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取服务器概览统计信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.services.Stat.GetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计数据获取失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
