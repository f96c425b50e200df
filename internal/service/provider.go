// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"edulink_server/internal/dao/mysql/repository"
	"edulink_server/internal/service/relationship"
	"edulink_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	Relationship RelationshipService // 好友关系 Service
	User         UserService         // 用户 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合实例
//  2. 创建各个 Service 实例，注入 Repository 依赖
//  3. 返回 Services 聚合
//
// repos: Repository 层聚合实例
// 返回: Services 聚合指针
func NewServices(repos *repository.Repositories) *Services {
	// 创建各个 Service 实例
	relationshipSvc := relationship.NewRelationshipService(repos)
	userSvc := user.NewUserService(repos)

	// 聚合并返回
	return &Services{
		Relationship: relationshipSvc,
		User:         userSvc,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Relationship.SendRequest() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
// repos: Repository 层聚合实例
func InitServices(repos *repository.Repositories) {
	Svc = NewServices(repos)
}
