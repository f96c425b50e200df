// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"edulink_server/internal/dto/request"
	"edulink_server/internal/dto/respond"
)

// RelationshipService 好友关系业务接口
// 覆盖好友申请生命周期和好友集合的全部操作
type RelationshipService interface {
	// SendRequest 发送好友申请
	SendRequest(senderId string, req request.SendFriendRequestRequest) (*respond.FriendRequestRespond, error)
	// ListRequests 查询待处理申请列表，direction 为 sent 或 received
	ListRequests(userId string, direction string) ([]respond.FriendRequestRespond, error)
	// RespondToRequest 处理（通过/拒绝）好友申请，只有接收方可调用
	RespondToRequest(userId string, req request.RespondRequestRequest) (*respond.FriendRequestRespond, error)
	// CancelRequest 撤回好友申请，只有发起方可调用
	CancelRequest(userId, requestId string) (*respond.FriendRequestRespond, error)
	// GetFriendList 获取自己的好友列表
	GetFriendList(userId string) ([]respond.FriendListRespond, error)
	// GetFriendListOf 获取指定用户的好友列表（公开查询）
	GetFriendListOf(targetId string) ([]respond.FriendListRespond, error)
	// RemoveFriend 删除好友，双向解除
	RemoveFriend(userId, friendId string) error
	// CheckStatus 查询与指定用户的关系状态
	CheckStatus(userId, otherId string) (*respond.RelationshipStatusRespond, error)
	// GetRequest 查询单条申请记录（含历史终态记录），仅申请双方可见
	GetRequest(userId, requestId string) (*respond.FriendRequestRespond, error)
}

// UserService 用户目录业务接口
// 处理用户注册、登录、资料管理等功能
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// GetUserInfo 获取单个用户信息
	GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error)
	// UpdateUserInfo 更新用户资料
	UpdateUserInfo(userId string, req request.UpdateUserInfoRequest) error
	// SearchByEmail 根据邮箱精确查找用户（用于添加好友前的搜索）
	SearchByEmail(email string) (*respond.GetUserInfoRespond, error)
}
