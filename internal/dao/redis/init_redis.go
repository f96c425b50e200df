// Package redis 提供 Redis 缓存操作的封装
// 本文件仅包含 Redis 连接初始化逻辑
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"strconv"

	"edulink_server/internal/config"
	"edulink_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// redisClient 全局 Redis 客户端实例（包内可见）
var redisClient *redis.Client

// ctx 全局上下文，用于 Redis 操作
var ctx = context.Background()

// errNotInit Redis 未初始化时所有操作返回此错误
// 调用方据此回源数据库，缓存层缺席不阻断业务
var errNotInit = errorx.New(errorx.CodeCacheError, "redis client not initialized")

// Init 初始化 Redis 连接
// 从配置文件读取连接参数并创建客户端实例
func Init() {
	conf := config.GetConfig()
	host := conf.RedisConfig.Host         // Redis 服务器地址
	port := conf.RedisConfig.Port         // Redis 端口
	password := conf.RedisConfig.Password // 密码，无密码留空
	db := conf.Db                         // 数据库编号

	// 拼接地址：host:port
	addr := host + ":" + strconv.Itoa(port)

	// 创建 Redis 客户端
	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		// 连接池配置
		PoolSize:     50, // 最大连接数
		MinIdleConns: 10, // 最小空闲连接，与 Worker 数量匹配
	})

	// 初始化缓存更新 Worker Pool
	// 启动 10 个 Worker，缓冲区大小 2000
	InitCacheWorker(10, 2000)
}
