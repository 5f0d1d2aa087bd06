package middleware

import (
	"fmt"
	"net/http"
	"photo-vault-server/internal/config"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通接口的请求体大小
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 跳过上传相关的路由
		// 这里简单通过路径判断
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/images") || strings.HasSuffix(path, "/images/batch") {
			if c.Request.Method == http.MethodPost {
				c.Next()
				return
			}
		}

		maxSizeMB := config.Get().Server.MaxRequestBodyMB
		if maxSizeMB <= 0 {
			// 未设置时默认 2MB
			maxSizeMB = 2
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小
// 批量上传允许 batch_limit 个文件，整体上限按单文件上限乘以数量放宽
func UploadBodyLimitMiddleware(batch bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.Get()
		maxSizeMB := cfg.Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024
		if batch {
			limit := cfg.Upload.BatchLimit
			if limit <= 0 {
				limit = 10
			}
			maxBytes *= int64(limit)
		}

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": fmt.Sprintf("文件大小不能超过 %dMB", maxBytes/(1024*1024))})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
