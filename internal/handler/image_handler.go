package handler

import (
	"net/http"

	"photo-vault-server/internal/common/httpx"
	"photo-vault-server/internal/dto"
	"photo-vault-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UploadImage 单文件上传，表单字段名 file
func (h *Handler) UploadImage(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请选择文件"})
		return
	}

	outcome, err := h.services.Image.ProcessUpload(c.Request.Context(), p, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, outcome)
}

// BatchUploadImages 批量上传，表单字段名 files
func (h *Handler) BatchUploadImages(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "参数格式错误"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请选择文件"})
		return
	}

	result, err := h.services.Image.ProcessBatchUpload(c.Request.Context(), p, files)
	if err != nil {
		httpx.WriteServiceError(c, err, "批量上传失败，请稍后重试")
		return
	}

	// 部分失败时整体仍返回 200，逐文件结果见 files
	c.JSON(http.StatusOK, result)
}

// ListMyImages 列出当前用户的图片
// user_id 查询参数仅对管理员有意义，普通用户传了也只能看到自己的
func (h *Handler) ListMyImages(c *gin.Context) {
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

	images, err := h.services.Image.ListImages(c.Request.Context(), p, query.UserID)
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

// UpdateImage 图片改名，仅限所有者本人
func (h *Handler) UpdateImage(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	var uri dto.ImageIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "无效的图片ID"})
		return
	}

	var req dto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.BindingErrorMessage(err)})
		return
	}

	image, err := h.services.Image.UpdateImage(p, uri.ID, req.FileName)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": image})
}

// DeleteImage 删除图片，所有者或管理员
func (h *Handler) DeleteImage(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户信息"})
		return
	}

	var uri dto.ImageIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "无效的图片ID"})
		return
	}

	if err := h.services.Image.DeleteImage(c.Request.Context(), p, uri.ID); err != nil {
		httpx.WriteServiceError(c, err, "删除图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "删除成功"})
}
