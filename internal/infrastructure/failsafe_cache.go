package infrastructure

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/infrastructure/redis"
	"github.com/na2na-p/storefront/internal/usecase"
)

// FailSafeCache はキャッシュストアの障害を封じ込めるデコレータです。
// キャッシュは最適化であって正しさの要件ではないため、ストア障害は
// リクエストを失敗させず「常にミス」への縮退として扱います。
// エラーはここでWarnログに記録され、呼び出し側へは伝播しません。
type FailSafeCache struct {
	client domain.CacheClient
}

var _ usecase.CacheClient = (*FailSafeCache)(nil)

func NewFailSafeCache(client domain.CacheClient) *FailSafeCache {
	return &FailSafeCache{
		client: client,
	}
}

// GetJSON はヒット時にtrueを返します。ミス・パース失敗・ストア障害はfalseです。
func (c *FailSafeCache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	err := c.client.GetJSON(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		slog.Warn("キャッシュの取得に失敗しました。ミスとして扱います", "key", key, "error", err)
	}
	return false
}

func (c *FailSafeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) bool {
	if err := c.client.SetJSON(ctx, key, value, ttl); err != nil {
		slog.Warn("キャッシュの書き込みに失敗しました", "key", key, "error", err)
		return false
	}
	return true
}

func (c *FailSafeCache) Delete(ctx context.Context, key string) bool {
	if err := c.client.Delete(ctx, key); err != nil {
		slog.Warn("キャッシュの削除に失敗しました", "key", key, "error", err)
		return false
	}
	return true
}

func (c *FailSafeCache) DeleteByPattern(ctx context.Context, pattern string) int {
	deleted, err := c.client.DeleteByPattern(ctx, pattern)
	if err != nil {
		slog.Warn("キーファミリの削除に失敗しました", "pattern", pattern, "error", err)
	}
	return deleted
}

func (c *FailSafeCache) Exists(ctx context.Context, key string) bool {
	exists, err := c.client.Exists(ctx, key)
	if err != nil {
		slog.Warn("キャッシュの存在確認に失敗しました", "key", key, "error", err)
		return false
	}
	return exists
}
