package redis

import "time"

type CacheKeyGeneratorImpl struct{}

func NewCacheKeyGenerator() *CacheKeyGeneratorImpl {
	return &CacheKeyGeneratorImpl{}
}

func (g *CacheKeyGeneratorImpl) HomeKey(limit int) string {
	return HomeKey(limit)
}

func (g *CacheKeyGeneratorImpl) HomeProductsKey(limit int) string {
	return HomeProductsKey(limit)
}

func (g *CacheKeyGeneratorImpl) BestSellerIDsKey() string {
	return BestSellerIDsCacheKey
}

func (g *CacheKeyGeneratorImpl) CategoriesAllKey() string {
	return CategoriesAllCacheKey
}

func (g *CacheKeyGeneratorImpl) CategoryDetailKey(slug string, page, limit int) string {
	return CategoryDetailKey(slug, page, limit)
}

func (g *CacheKeyGeneratorImpl) ProductKey(slug string) string {
	return ProductKey(slug)
}

func (g *CacheKeyGeneratorImpl) RelatedProductsKey(categoryID, excludeID string, limit int) string {
	return RelatedProductsKey(categoryID, excludeID, limit)
}

func (g *CacheKeyGeneratorImpl) ProductCategoryPattern(categoryID string) string {
	return ProductCategoryPattern(categoryID)
}

func (g *CacheKeyGeneratorImpl) CategoryDetailPattern(slug string) string {
	return CategoryDetailPattern(slug)
}

func (g *CacheKeyGeneratorImpl) HomePattern() string {
	return HomePattern()
}

func (g *CacheKeyGeneratorImpl) HomeProductsPattern() string {
	return HomeProductsPattern()
}

type CacheConfigImpl struct{}

func NewCacheConfig() *CacheConfigImpl {
	return &CacheConfigImpl{}
}

func (c *CacheConfigImpl) HomeTTL() time.Duration {
	return HomeTTL
}

func (c *CacheConfigImpl) HomeProductsTTL() time.Duration {
	return HomeProductsTTL
}

func (c *CacheConfigImpl) BestSellerIDsTTL() time.Duration {
	return BestSellerIDsTTL
}

func (c *CacheConfigImpl) CategoriesAllTTL() time.Duration {
	return CategoriesAllTTL
}

func (c *CacheConfigImpl) CategoryDetailTTL() time.Duration {
	return CategoryDetailTTL
}

func (c *CacheConfigImpl) ProductTTL() time.Duration {
	return ProductTTL
}

func (c *CacheConfigImpl) RelatedProductsTTL() time.Duration {
	return RelatedProductsTTL
}
