package router

import (
	adminhandler "photo-vault-server/internal/handler/admin"
	"photo-vault-server/internal/middleware"
	"photo-vault-server/internal/service"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.Handler, services *service.Services) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.PrincipalResolver(services.Profile))
	adminGroup.Use(middleware.BanGate())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", h.GetServerStats)

	adminGroup.GET("/users", h.GetUserList)
	adminGroup.POST("/users", h.CreateUser)
	adminGroup.POST("/users/ban", h.BanUser)

	adminGroup.GET("/images", h.GetImageList)
}
