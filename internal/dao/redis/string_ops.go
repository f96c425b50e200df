// Package redis 提供 Redis 缓存操作的封装
// 本文件包含 String 类型的基础操作
package redis

import (
	"errors"
	"time"

	"edulink_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// ==================== 基础 String 操作 ====================

// SetKeyEx 设置键值对并指定过期时间
// key: 键名
// value: 值
// timeout: 过期时间
func SetKeyEx(key string, value string, timeout time.Duration) error {
	if redisClient == nil {
		return errNotInit
	}
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey 获取键对应的值
// 如果键不存在，返回空字符串和 nil（不视为错误）
func GetKey(key string) (string, error) {
	if redisClient == nil {
		return "", errNotInit
	}
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // 键不存在，返回空但不报错
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}
