// Package redis 提供 Redis 缓存操作的封装
// 本文件包含键的删除操作
package redis

import (
	"edulink_server/pkg/errorx"
)

// ==================== 删除操作 ====================

// DelKeyIfExists 删除键（如果存在）
// 先检查键是否存在，存在则删除
func DelKeyIfExists(key string) error {
	if redisClient == nil {
		return errNotInit
	}
	// 检查键是否存在
	exists, err := redisClient.Exists(ctx, key).Result()
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis exists key %s", key)
	}
	if exists == 1 { // 键存在
		if err := redisClient.Unlink(ctx, key).Err(); err != nil {
			return errorx.Wrapf(err, errorx.CodeCacheError, "redis unlink key %s", key)
		}
	}
	// 无论键是否存在，都返回成功
	return nil
}
