package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/na2na-p/storefront/internal/domain"
)

// CategoryUseCase はカテゴリ一覧とカテゴリ詳細のリードスルーアクセサです
type CategoryUseCase struct {
	products     domain.ProductRepository
	categories   domain.CategoryRepository
	cache        CacheClient
	keys         CacheKeyGenerator
	cacheConfig  CacheConfig
	assets       AssetURLResolver
	fetchTimeout time.Duration
}

func NewCategoryUseCase(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	cache CacheClient,
	keys CacheKeyGenerator,
	cacheConfig CacheConfig,
	assets AssetURLResolver,
	fetchTimeout time.Duration,
) *CategoryUseCase {
	return &CategoryUseCase{
		products:     products,
		categories:   categories,
		cache:        cache,
		keys:         keys,
		cacheConfig:  cacheConfig,
		assets:       assets,
		fetchTimeout: fetchTimeout,
	}
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) (*CategoriesResponse, error) {
	cacheKey := uc.keys.CategoriesAllKey()

	var cached CategoriesResponse
	if uc.cache.GetJSON(ctx, cacheKey, &cached) {
		cached.Source = SourceCache
		return &cached, nil
	}

	fctx, cancel := fetchContext(ctx, uc.fetchTimeout)
	defer cancel()

	categories, err := uc.categories.List(fctx)
	if err != nil {
		return nil, wrapFetchError(err, "カテゴリ一覧の取得に失敗しました", nil)
	}

	resp := &CategoriesResponse{
		Success:    true,
		Source:     SourceAPI,
		Categories: newCategoryViews(categories, uc.assets),
	}

	uc.cache.SetJSON(ctx, cacheKey, resp, uc.cacheConfig.CategoriesAllTTL())

	return resp, nil
}

// GetCategoryDetail はカテゴリと配下の商品をページングして返します。
// 商品が0件でも正常なレスポンスです。
func (uc *CategoryUseCase) GetCategoryDetail(ctx context.Context, slugValue string, page, limit int) (*CategoryDetailResponse, error) {
	slug, err := domain.NewSlug(slugValue)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSlugFormat) {
			return nil, ErrInvalidSlug
		}
		return nil, err
	}

	page = domain.NormalizePage(page)
	limit = domain.NormalizeLimit(limit, DefaultCategoryLimit)
	cacheKey := uc.keys.CategoryDetailKey(slug.String(), page, limit)

	var cached CategoryDetailResponse
	if uc.cache.GetJSON(ctx, cacheKey, &cached) {
		cached.Source = SourceCache
		return &cached, nil
	}

	fctx, cancel := fetchContext(ctx, uc.fetchTimeout)
	defer cancel()

	category, err := uc.categories.FindBySlug(fctx, slug)
	if err != nil {
		return nil, wrapFetchError(err, "カテゴリの取得に失敗しました", ErrCategoryNotFound)
	}

	products, total, err := uc.products.FindByCategory(fctx, category.ID(), page, limit)
	if err != nil {
		return nil, wrapFetchError(err, "カテゴリ配下の商品の取得に失敗しました", nil)
	}

	resp := &CategoryDetailResponse{
		Success:    true,
		Source:     SourceAPI,
		Category:   newCategoryView(category, uc.assets),
		Products:   newProductViews(products, uc.assets),
		Pagination: domain.NewPagination(page, limit, total),
	}

	uc.cache.SetJSON(ctx, cacheKey, resp, uc.cacheConfig.CategoryDetailTTL())

	return resp, nil
}
