// Package model 定义数据库实体模型
// 本文件定义好友申请模型
package model

import (
	"gorm.io/gorm"
)

// 好友申请状态常量
// PENDING 为唯一非终态；终态之间不允许相互转换
const (
	RequestStatusPending   int8 = 0 // 申请中（待处理）
	RequestStatusAccepted  int8 = 1 // 已通过
	RequestStatusRejected  int8 = 2 // 已拒绝
	RequestStatusCancelled int8 = 3 // 已撤回
)

// FriendRequest 好友申请模型
// 对应数据库 friend_request 表
// 不变量：任意无序用户对 {A, B} 之间，最多存在一条
// status=PENDING 且未软删除的申请，与谁是发送方无关
type FriendRequest struct {
	gorm.Model // 内嵌 GORM 模型，DeletedAt 即软删除标记

	// Uuid 申请记录唯一标识
	// 格式：R + 随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:申请id"`

	// SenderId 申请发起方的用户 UUID
	SenderId string `gorm:"column:sender_id;index;type:char(20);not null;comment:发送方ID"`

	// ReceiverId 申请接收方的用户 UUID
	// 约束：SenderId != ReceiverId
	ReceiverId string `gorm:"column:receiver_id;index;type:char(20);not null;comment:接收方ID"`

	// Status 申请状态
	// 0=申请中, 1=已通过, 2=已拒绝, 3=已撤回
	Status int8 `gorm:"column:status;not null;comment:申请状态，0.申请中，1.通过，2.拒绝，3.撤回"`

	// Note 申请附言
	// 申请时附带的留言，可为空
	Note string `gorm:"column:note;type:varchar(100);comment:申请附言"`
}

// TableName 指定表名
func (FriendRequest) TableName() string {
	return "friend_request"
}

// IsTerminal 判断申请是否已处于终态
// 终态申请不允许再被通过/拒绝/撤回
func (r *FriendRequest) IsTerminal() bool {
	return r.Status != RequestStatusPending
}
