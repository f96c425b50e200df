// Package model 定义数据库实体模型
// 本文件定义用户信息模型，包含用户基本资料、认证信息和好友ID集合
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfo 用户信息模型
// 对应数据库 user_info 表
type UserInfo struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 用户唯一标识
	// 格式：U + 随机字符串，如 "U240104Ab12Cd34Ef"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`

	// Nickname 用户昵称
	Nickname string `gorm:"column:nickname;type:varchar(20);not null;comment:昵称"`

	// Email 邮箱地址，用于登录验证和好友搜索
	Email string `gorm:"column:email;index;type:char(50);not null;comment:邮箱"`

	// Telephone 手机号码（可选）
	Telephone string `gorm:"column:telephone;type:char(11);comment:电话"`

	// Avatar 用户头像 URL
	Avatar string `gorm:"column:avatar;type:char(255);default:/static/avatars/default.png;not null;comment:头像"`

	// Signature 个性签名
	Signature string `gorm:"column:signature;type:varchar(100);comment:个性签名"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// Friends 好友 UUID 集合
	// 逻辑上是集合（不允许重复），出于存储方便以 JSON 列表保存
	// 对称性约束：B 在 A.Friends 中时 A 必在 B.Friends 中，
	// 由 relationship 服务在同一事务内的双向更新保证
	Friends FriendSet `gorm:"column:friends;type:json;serializer:json;comment:好友ID集合"`

	// Status 账号状态
	// 0=正常, 1=禁用
	Status int8 `gorm:"column:status;index;not null;comment:状态，0.正常，1.禁用"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (UserInfo) TableName() string {
	return "user_info"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段
// 调用方只需设置 RawPassword，无需手动加密
func (u *UserInfo) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = "" // 清空明文，防止泄露
	}
	return nil
}

// CheckPassword 校验密码是否正确
// plaintext: 用户输入的明文密码
func (u *UserInfo) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}

// FriendSet 好友 UUID 集合，底层为字符串切片
// 提供集合语义的操作，保证不出现重复成员
type FriendSet []string

// Contains 判断 uuid 是否已在集合中
func (s FriendSet) Contains(uuid string) bool {
	for _, id := range s {
		if id == uuid {
			return true
		}
	}
	return false
}

// Add 将 uuid 加入集合，已存在时不做任何修改
// 返回新集合（不修改原切片）
func (s FriendSet) Add(uuid string) FriendSet {
	if s.Contains(uuid) {
		return s
	}
	return append(s, uuid)
}

// Remove 将 uuid 从集合中移除
// 返回新集合和是否确实移除了成员
func (s FriendSet) Remove(uuid string) (FriendSet, bool) {
	result := make(FriendSet, 0, len(s))
	removed := false
	for _, id := range s {
		if id == uuid {
			removed = true
			continue
		}
		result = append(result, id)
	}
	return result, removed
}
