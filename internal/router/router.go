// Package router 提供 HTTP 路由注册
// 本文件定义路由管理器，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"edulink_server/internal/handler"
	"edulink_server/internal/infrastructure/middleware"
)

// Router 路由管理器
// 持有 Handler 聚合实例，各路由文件通过它访问具体 Handler
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 构造函数，注入 Handler 聚合实例
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 公开接口直接挂在引擎上，需认证的接口统一套 JWT 中间件
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 公开路由（无需认证）
	rt.RegisterAuthRoutes(r)
	rt.RegisterPublicRoutes(r)

	// 需要认证的路由
	authed := r.Group("")
	authed.Use(middleware.JWTAuth())
	rt.RegisterUserRoutes(authed)
	rt.RegisterFriendRoutes(authed)
}
