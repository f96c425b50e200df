// Package handler 提供 HTTP 请求处理器
// 本文件处理好友关系相关的 API 请求
package handler

import (
	"edulink_server/internal/dto/request"
	"edulink_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RelationshipHandler 好友关系请求处理器
type RelationshipHandler struct {
	svc service.RelationshipService
}

// NewRelationshipHandler 构造函数，注入 Service 依赖
func NewRelationshipHandler(svc service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{svc: svc}
}

// SendRequest 发送好友申请
// POST /friend/sendRequest
// 请求体: request.SendFriendRequestRequest
// 响应: respond.FriendRequestRespond
func (h *RelationshipHandler) SendRequest(c *gin.Context) {
	var req request.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.SendRequest(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListRequests 查询待处理申请列表
// GET /friend/requests?direction=sent|received
// 查询参数: request.ListRequestsRequest
// 响应: []respond.FriendRequestRespond
func (h *RelationshipHandler) ListRequests(c *gin.Context) {
	var req request.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.ListRequests(c.GetString("user_id"), req.Direction)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RespondRequest 处理（通过/拒绝）好友申请
// POST /friend/respondRequest
// 请求体: request.RespondRequestRequest
// 响应: respond.FriendRequestRespond
func (h *RelationshipHandler) RespondRequest(c *gin.Context) {
	var req request.RespondRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.RespondToRequest(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CancelRequest 撤回好友申请
// POST /friend/cancelRequest
// 请求体: request.CancelRequestRequest
// 响应: respond.FriendRequestRespond
func (h *RelationshipHandler) CancelRequest(c *gin.Context) {
	var req request.CancelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.CancelRequest(c.GetString("user_id"), req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFriendList 获取自己的好友列表
// GET /friend/list
// 响应: []respond.FriendListRespond
func (h *RelationshipHandler) GetFriendList(c *gin.Context) {
	data, err := h.svc.GetFriendList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFriendListOf 获取指定用户的好友列表（公开接口，无需认证）
// GET /friend/listOf?user_id=xxx
// 查询参数: request.FriendListOfRequest
// 响应: []respond.FriendListRespond
func (h *RelationshipHandler) GetFriendListOf(c *gin.Context) {
	var req request.FriendListOfRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetFriendListOf(req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RemoveFriend 删除好友
// POST /friend/remove
// 请求体: request.RemoveFriendRequest
// 响应: nil
func (h *RelationshipHandler) RemoveFriend(c *gin.Context) {
	var req request.RemoveFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.RemoveFriend(c.GetString("user_id"), req.FriendId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CheckStatus 查询与指定用户的关系状态
// GET /friend/status?user_id=xxx
// 查询参数: request.CheckStatusRequest
// 响应: respond.RelationshipStatusRespond
func (h *RelationshipHandler) CheckStatus(c *gin.Context) {
	var req request.CheckStatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.CheckStatus(c.GetString("user_id"), req.UserId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRequest 查询单条申请记录（含历史终态记录）
// GET /friend/request?request_id=xxx
// 查询参数: request.GetRequestRequest
// 响应: respond.FriendRequestRespond
func (h *RelationshipHandler) GetRequest(c *gin.Context) {
	var req request.GetRequestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetRequest(c.GetString("user_id"), req.RequestId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
