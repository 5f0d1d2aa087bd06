package admin

import "photo-vault-server/internal/service"

// Handler 管理端处理器集合。路由层保证进入这里的请求已通过管理员校验，
// 但服务层仍会用新鲜主体再做一次授权判断。
type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{services: services}
}
