package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/storefront/internal/domain"
)

// ProductUseCase は商品詳細と関連商品のリードスルーアクセサです
type ProductUseCase struct {
	products     domain.ProductRepository
	categories   domain.CategoryRepository
	cache        CacheClient
	keys         CacheKeyGenerator
	cacheConfig  CacheConfig
	assets       AssetURLResolver
	fetchTimeout time.Duration
}

func NewProductUseCase(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	cache CacheClient,
	keys CacheKeyGenerator,
	cacheConfig CacheConfig,
	assets AssetURLResolver,
	fetchTimeout time.Duration,
) *ProductUseCase {
	return &ProductUseCase{
		products:     products,
		categories:   categories,
		cache:        cache,
		keys:         keys,
		cacheConfig:  cacheConfig,
		assets:       assets,
		fetchTimeout: fetchTimeout,
	}
}

func (uc *ProductUseCase) GetProductDetail(ctx context.Context, slugValue string) (*ProductDetailResponse, error) {
	slug, err := domain.NewSlug(slugValue)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSlugFormat) {
			return nil, ErrInvalidSlug
		}
		return nil, err
	}

	cacheKey := uc.keys.ProductKey(slug.String())

	var cached ProductDetailResponse
	if uc.cache.GetJSON(ctx, cacheKey, &cached) {
		cached.Source = SourceCache
		return &cached, nil
	}

	fctx, cancel := fetchContext(ctx, uc.fetchTimeout)
	defer cancel()

	product, err := uc.products.FindBySlug(fctx, slug)
	if err != nil {
		return nil, wrapFetchError(err, "商品の取得に失敗しました", ErrProductNotFound)
	}

	resp := &ProductDetailResponse{
		Success: true,
		Source:  SourceAPI,
		Product: newProductView(product, uc.assets),
	}

	// カテゴリの解決は防御的に行う。失敗しても商品詳細自体は返す。
	category, err := uc.categories.FindByID(fctx, product.CategoryID())
	if err != nil {
		slog.Warn("商品カテゴリの解決に失敗しました", "categoryId", product.CategoryID().String(), "error", err)
	} else {
		view := newCategoryView(category, uc.assets)
		resp.Category = &view
	}

	uc.cache.SetJSON(ctx, cacheKey, resp, uc.cacheConfig.ProductTTL())

	return resp, nil
}

// GetRelatedProducts は同一カテゴリの関連商品を返します。
// excludeIDがuuid.Nilの場合は除外なしとして扱われます。
func (uc *ProductUseCase) GetRelatedProducts(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) (*RelatedProductsResponse, error) {
	limit = domain.NormalizeLimit(limit, DefaultRelatedLimit)

	exclude := ""
	if excludeID != uuid.Nil {
		exclude = excludeID.String()
	}
	cacheKey := uc.keys.RelatedProductsKey(categoryID.String(), exclude, limit)

	var cached RelatedProductsResponse
	if uc.cache.GetJSON(ctx, cacheKey, &cached) {
		cached.Source = SourceCache
		return &cached, nil
	}

	fctx, cancel := fetchContext(ctx, uc.fetchTimeout)
	defer cancel()

	products, err := uc.products.FindRelated(fctx, categoryID, excludeID, limit)
	if err != nil {
		return nil, wrapFetchError(err, "関連商品の取得に失敗しました", nil)
	}

	resp := &RelatedProductsResponse{
		Success:  true,
		Source:   SourceAPI,
		Products: newProductViews(products, uc.assets),
	}

	uc.cache.SetJSON(ctx, cacheKey, resp, uc.cacheConfig.RelatedProductsTTL())

	return resp, nil
}
