package redis

import (
	"context"
	"fmt"
)

// RedisHealthChecker はキャッシュストアへの疎通を確認します。
// キャッシュ障害はフェイルセーフ層が常時ミスへ縮退させるため稼働は継続しますが、
// readinessでは縮退運転を検知できるよう個別に報告します。
type RedisHealthChecker struct {
	client *RedisClient
}

func NewRedisHealthChecker(client *RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{
		client: client,
	}
}

func (c *RedisHealthChecker) Name() string {
	return "redis"
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redisへの疎通確認に失敗しました: %w", err)
	}
	return nil
}
