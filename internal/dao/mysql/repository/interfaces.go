// Package repository 定义数据访问层接口
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"edulink_server/internal/model"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户目录数据访问接口
// relationship 服务只通过此接口读取用户记录和修改 friends 字段，
// 不会触碰身份、凭证等其他字段
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByUuidForUpdate 根据 UUID 查找用户并加行锁
	// 仅在事务内使用，用于串行化并发的好友集合更新
	FindByUuidForUpdate(uuid string) (*model.UserInfo, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.UserInfo, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
	// Update 更新用户信息
	Update(user *model.UserInfo) error
	// UpdateFriends 只更新用户的好友集合字段
	UpdateFriends(uuid string, friends model.FriendSet) error
}

// FriendRequestRepository 好友申请数据访问接口
// 纯数据存取，不包含业务规则；软删除记录对所有查询不可见，
// 仅 FindByUuidUnscoped 可以查到历史记录
type FriendRequestRepository interface {
	// FindByUuid 根据 UUID 查找申请记录（不含软删除）
	FindByUuid(uuid string) (*model.FriendRequest, error)
	// FindByUuidUnscoped 根据 UUID 查找申请记录（含软删除，用于历史查询）
	FindByUuidUnscoped(uuid string) (*model.FriendRequest, error)
	// FindPendingByPair 查找无序用户对之间的待处理申请（双向）
	// 用于"申请已存在"唯一性检查和状态推导
	FindPendingByPair(userOneId, userTwoId string) (*model.FriendRequest, error)
	// FindPendingBySenderId 查找用户发出的待处理申请，按创建时间倒序
	FindPendingBySenderId(senderId string) ([]model.FriendRequest, error)
	// FindPendingByReceiverId 查找用户收到的待处理申请，按创建时间倒序
	FindPendingByReceiverId(receiverId string) ([]model.FriendRequest, error)
	// Create 创建新申请
	Create(request *model.FriendRequest) error
	// UpdateStatus 更新申请状态
	UpdateStatus(uuid string, status int8) error
}
