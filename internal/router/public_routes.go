// Package router 提供 HTTP 路由注册
// 本文件定义无需认证的公开路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes 注册公开路由
func (rt *Router) RegisterPublicRoutes(r *gin.Engine) {
	// 注册和登录
	r.POST("/register", rt.handlers.User.Register)
	r.POST("/login", rt.handlers.User.Login)

	// 好友列表是公开信息，任何人都可以查看任意用户的好友
	r.GET("/friend/listOf", rt.handlers.Relationship.GetFriendListOf)
}
