package handler

import "photo-vault-server/internal/service"

// Handler 面向普通用户与公共接口的处理器集合。
type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{services: services}
}
