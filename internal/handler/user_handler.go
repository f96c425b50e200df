// Package handler 提供 HTTP 请求处理器
// 本文件处理用户相关的 API 请求
package handler

import (
	"edulink_server/internal/dto/request"
	"edulink_server/internal/service"
	"edulink_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler 构造函数，注入 Service 依赖
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 用户注册
// POST /register
// 请求体: request.RegisterRequest
// 响应: respond.RegisterRespond
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 密码登录
// POST /login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserInfo 获取用户信息
// GET /user/getUserInfo?uuid=xxx
// uuid 为空时返回当前登录用户自己的信息
// 响应: respond.GetUserInfoRespond
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	uuid := c.Query("uuid")
	if uuid == "" {
		uuid = c.GetString("user_id")
	}
	data, err := h.svc.GetUserInfo(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUserInfo 更新用户资料
// POST /user/updateUserInfo
// 请求体: request.UpdateUserInfoRequest
// 响应: nil
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.UpdateUserInfo(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SearchByEmail 根据邮箱查找用户
// GET /user/searchByEmail?email=xxx
// 响应: respond.GetUserInfoRespond
func (h *UserHandler) SearchByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "email 不能为空"))
		return
	}
	data, err := h.svc.SearchByEmail(email)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
