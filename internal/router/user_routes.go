package router

import (
	"photo-vault-server/internal/handler"
	"photo-vault-server/internal/middleware"
	"photo-vault-server/internal/service"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler, services *service.Services) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	userGroup.Use(middleware.PrincipalResolver(services.Profile))

	// 资料与封禁状态查询不经过封禁门禁：被封禁的用户需要知道自己被封了
	userGroup.GET("/profile", h.GetProfile)
	userGroup.GET("/banned", h.GetBannedState)

	// 图片操作全部在封禁门禁之后
	imageGroup := userGroup.Group("/images")
	imageGroup.Use(middleware.BanGate())

	imageGroup.POST("", middleware.UploadBodyLimitMiddleware(false), h.UploadImage)
	imageGroup.POST("/batch", middleware.UploadBodyLimitMiddleware(true), h.BatchUploadImages)
	imageGroup.GET("", h.ListMyImages)
	imageGroup.PATCH("/:id", h.UpdateImage)
	imageGroup.DELETE("/:id", h.DeleteImage)
}
