package admin

import (
	"net/http"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/dto"
	"photo-vault-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GetImageList 全量图片列表，可按 user_id 过滤
func (h *Handler) GetImageList(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	var query dto.ListImagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	images, err := h.services.Image.ListImagesForAdmin(c.Request.Context(), p, query.UserID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"list":    images,
		"total":   len(images),
	})
}
