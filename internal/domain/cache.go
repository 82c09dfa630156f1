//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_cache.go -package=domain
package domain

import (
	"context"
	"time"
)

// CacheClient はキャッシュストアへの生のアクセスを抽象化します。
// 各操作はストアレベルのエラーをそのまま返します。エラーの封じ込めは
// 上位のフェイルセーフ層が担当します。
type CacheClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPattern はパターンに一致するキー群を一括削除し、削除件数を返します
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	Exists(ctx context.Context, key string) (bool, error)
}
