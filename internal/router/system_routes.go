package router

import (
	"photo-vault-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	api.GET("/system/init", h.GetInitState)
	api.POST("/system/init", authLimiter, h.Init)
}
