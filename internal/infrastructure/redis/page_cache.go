package redis

import (
	"context"
	"fmt"
)

// PageCache はレンダリング済みページキャッシュの再検証を行います。
// ページエントリ自体はフロントエンドのレンダラが書き込むため、
// この実装は該当キーの削除のみを担当します。
type PageCache struct {
	client *RedisClient
}

func NewPageCache(client *RedisClient) *PageCache {
	return &PageCache{
		client: client,
	}
}

// Revalidate は指定パスのページキャッシュエントリを削除します
func (p *PageCache) Revalidate(ctx context.Context, path string) error {
	if err := p.client.Delete(ctx, PageKey(path)); err != nil {
		return fmt.Errorf("ページキャッシュの再検証に失敗しました: %w", err)
	}
	return nil
}
