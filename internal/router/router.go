package router

import (
	"photo-vault-server/internal/handler"
	adminhandler "photo-vault-server/internal/handler/admin"
	"photo-vault-server/internal/middleware"
	"photo-vault-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	services *service.Services
	handler  *handler.Handler
	admin    *adminhandler.Handler
}

func NewRouter(services *service.Services) *Router {
	return &Router{
		services: services,
		handler:  handler.NewHandler(services),
		admin:    adminhandler.NewHandler(services),
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：在多个域路由中复用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimitMiddleware()

	registerPublicRoutes(api)
	registerSystemRoutes(api, authLimiter, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerUserRoutes(api, rt.handler, rt.services)
	registerAdminRoutes(api, rt.admin, rt.services)
}
