// Package redis provides Redis cache key management and TTL definitions.
// All cache keys and TTLs should be defined in this file to ensure centralized management.
package redis

import (
	"fmt"
	"time"
)

// Cache Keys
// キー形式は既存デプロイとの互換性のためビット単位で一致させる必要があります。
const (
	// HomeKeyPrefix is the prefix for the home page aggregate cache keys
	// Format: home:main:{limit}
	HomeKeyPrefix = "home:main:"

	// HomeProductsKeyPrefix is the prefix for the home product-facet partial cache keys
	// Format: home:products:result:{limit}
	HomeProductsKeyPrefix = "home:products:result:"

	// BestSellerIDsCacheKey is the key for the best-seller product ID list
	BestSellerIDsCacheKey = "bestSellers:ids"

	// CategoriesAllCacheKey is the key for the all-categories list
	CategoriesAllCacheKey = "categories:all"

	// CategoryDetailKeyPrefix is the prefix for paginated category detail cache keys
	// Format: category:slug:{slug}:page:{page}:limit:{limit}
	CategoryDetailKeyPrefix = "category:slug:"

	// ProductKeyPrefix is the prefix for product detail cache keys
	// Format: product:slug:{slug}
	ProductKeyPrefix = "product:slug:"

	// RelatedProductsKeyPrefix is the prefix for related-products-by-category cache keys
	// Format: product:category:{categoryId}:exclude:{excludeIdOrNone}:limit:{limit}
	RelatedProductsKeyPrefix = "product:category:"

	// PageKeyPrefix is the prefix for rendered page cache keys
	// Format: page:{path}
	PageKeyPrefix = "page:"
)

// Cache TTL Definitions
// TTLは鮮度とデータベース・集計負荷のトレードオフで決まります。
// カテゴリは変更が稀なため長く、商品一覧は変更が多いため短くします。
const (
	// HomeTTL is the TTL for the home page aggregate (30 minutes)
	HomeTTL = 30 * time.Minute

	// HomeProductsTTL is the TTL for the home product facet (30 minutes)
	HomeProductsTTL = 30 * time.Minute

	// BestSellerIDsTTL is the TTL for the best-seller ID list (30 minutes)
	BestSellerIDsTTL = 30 * time.Minute

	// CategoriesAllTTL is the TTL for the all-categories list (6 hours)
	CategoriesAllTTL = 6 * time.Hour

	// CategoryDetailTTL is the TTL for paginated category detail (6 hours)
	CategoryDetailTTL = 6 * time.Hour

	// ProductTTL is the TTL for product detail (30 minutes)
	ProductTTL = 30 * time.Minute

	// RelatedProductsTTL is the TTL for related-products lists (30 minutes)
	RelatedProductsTTL = 30 * time.Minute
)

// Key Generation Functions
// These functions provide a consistent way to generate cache keys
// with proper prefixes.

// HomeKey generates a cache key for the home page aggregate
func HomeKey(limit int) string {
	return fmt.Sprintf("%s%d", HomeKeyPrefix, limit)
}

// HomeProductsKey generates a cache key for the home product facet
func HomeProductsKey(limit int) string {
	return fmt.Sprintf("%s%d", HomeProductsKeyPrefix, limit)
}

// CategoryDetailKey generates a cache key for a paginated category detail page
func CategoryDetailKey(slug string, page, limit int) string {
	return fmt.Sprintf("%s%s:page:%d:limit:%d", CategoryDetailKeyPrefix, slug, page, limit)
}

// ProductKey generates a cache key for a product detail
func ProductKey(slug string) string {
	return ProductKeyPrefix + slug
}

// RelatedProductsKey generates a cache key for a related-products list.
// excludeIDが空の場合は"none"が使用されます。
func RelatedProductsKey(categoryID, excludeID string, limit int) string {
	if excludeID == "" {
		excludeID = "none"
	}
	return fmt.Sprintf("%s%s:exclude:%s:limit:%d", RelatedProductsKeyPrefix, categoryID, excludeID, limit)
}

// PageKey generates a cache key for a rendered page
func PageKey(path string) string {
	return PageKeyPrefix + path
}

// Key Family Patterns
// あるエンティティに由来するキーファミリを一括削除するためのパターンです。

// ProductCategoryPattern matches every cache entry derived from one category's product set
func ProductCategoryPattern(categoryID string) string {
	return RelatedProductsKeyPrefix + categoryID + ":*"
}

// CategoryDetailPattern matches every paginated variant of one category's detail page
func CategoryDetailPattern(slug string) string {
	return CategoryDetailKeyPrefix + slug + ":*"
}

// HomePattern matches every page-size variant of the home aggregate
func HomePattern() string {
	return HomeKeyPrefix + "*"
}

// HomeProductsPattern matches every page-size variant of the home product facet
func HomeProductsPattern() string {
	return HomeProductsKeyPrefix + "*"
}
