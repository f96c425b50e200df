// Package router 提供 HTTP 路由注册
// 本文件定义好友相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友相关路由（需要认证）
// 包括好友申请生命周期和好友关系管理
func (rt *Router) RegisterFriendRoutes(rg *gin.RouterGroup) {
	friendGroup := rg.Group("/friend")
	{
		// ===== 好友申请 =====
		friendGroup.POST("/sendRequest", rt.handlers.Relationship.SendRequest)       // 发送好友申请
		friendGroup.GET("/requests", rt.handlers.Relationship.ListRequests)          // 查询待处理申请列表
		friendGroup.POST("/respondRequest", rt.handlers.Relationship.RespondRequest) // 通过/拒绝好友申请
		friendGroup.POST("/cancelRequest", rt.handlers.Relationship.CancelRequest)   // 撤回好友申请
		friendGroup.GET("/request", rt.handlers.Relationship.GetRequest)             // 查询单条申请记录

		// ===== 好友关系 =====
		friendGroup.GET("/list", rt.handlers.Relationship.GetFriendList)   // 获取自己的好友列表
		friendGroup.POST("/remove", rt.handlers.Relationship.RemoveFriend) // 删除好友
		friendGroup.GET("/status", rt.handlers.Relationship.CheckStatus)   // 查询关系状态
	}
}
