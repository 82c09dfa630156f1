//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cache_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"
)

// CacheClient はフェイルセーフなキャッシュアクセスを提供します。
// ストア障害はすべて内部で封じ込められ、読み取りはミス、書き込み・削除は
// no-opに縮退します。呼び出し側にエラーは伝播しません。
type CacheClient interface {
	// GetJSON はキャッシュヒット時にdestへ値を格納しtrueを返します。
	// ミス・パース失敗・ストア障害はいずれもfalseです。
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) bool
	Delete(ctx context.Context, key string) bool
	// DeleteByPattern はパターンに一致したキーの削除件数を返します。失敗時は0です。
	DeleteByPattern(ctx context.Context, pattern string) int
	Exists(ctx context.Context, key string) bool
}

type CacheKeyGenerator interface {
	HomeKey(limit int) string
	HomeProductsKey(limit int) string
	BestSellerIDsKey() string
	CategoriesAllKey() string
	CategoryDetailKey(slug string, page, limit int) string
	ProductKey(slug string) string
	RelatedProductsKey(categoryID, excludeID string, limit int) string
	ProductCategoryPattern(categoryID string) string
	CategoryDetailPattern(slug string) string
	HomePattern() string
	HomeProductsPattern() string
}

type CacheConfig interface {
	HomeTTL() time.Duration
	HomeProductsTTL() time.Duration
	BestSellerIDsTTL() time.Duration
	CategoriesAllTTL() time.Duration
	CategoryDetailTTL() time.Duration
	ProductTTL() time.Duration
	RelatedProductsTTL() time.Duration
}
