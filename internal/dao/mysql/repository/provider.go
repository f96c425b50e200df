// Package repository 提供 Repository 层聚合与构造
package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db            *gorm.DB                // GORM 数据库实例
	User          UserRepository          // 用户目录 Repository
	FriendRequest FriendRequestRepository // 好友申请 Repository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		FriendRequest: NewFriendRequestRepository(db),
	}
}

// NewRepositoriesWithImpl 以给定的 Repository 实现构造聚合
// 供测试注入内存实现使用，此时 Transaction 直接执行传入函数
func NewRepositoriesWithImpl(user UserRepository, friendRequest FriendRequestRepository) *Repositories {
	return &Repositories{
		User:          user,
		FriendRequest: friendRequest,
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// 双向好友关系的对称性更新必须通过此方法执行
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	// 内存实现没有事务语义，直接执行
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
