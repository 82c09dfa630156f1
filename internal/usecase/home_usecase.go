package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/storefront/internal/domain"
)

// HomeUseCase はホームフィードのリードスルーアクセサです
type HomeUseCase struct {
	products     domain.ProductRepository
	categories   domain.CategoryRepository
	cache        CacheClient
	keys         CacheKeyGenerator
	cacheConfig  CacheConfig
	assets       AssetURLResolver
	fetchTimeout time.Duration
}

func NewHomeUseCase(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	cache CacheClient,
	keys CacheKeyGenerator,
	cacheConfig CacheConfig,
	assets AssetURLResolver,
	fetchTimeout time.Duration,
) *HomeUseCase {
	return &HomeUseCase{
		products:     products,
		categories:   categories,
		cache:        cache,
		keys:         keys,
		cacheConfig:  cacheConfig,
		assets:       assets,
		fetchTimeout: fetchTimeout,
	}
}

// GetHome はホームページ集約を返します。キャッシュミス時はデータベースから
// 組み立ててキャッシュへ書き戻します。
func (uc *HomeUseCase) GetHome(ctx context.Context, limit int) (*HomeResponse, error) {
	limit = domain.NormalizeLimit(limit, DefaultHomeLimit)
	cacheKey := uc.keys.HomeKey(limit)

	var cached HomeResponse
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

	products, err := uc.homeProducts(ctx, fctx, limit)
	if err != nil {
		return nil, err
	}

	resp := &HomeResponse{
		Success:     true,
		Source:      SourceAPI,
		Categories:  newCategoryViews(categories, uc.assets),
		Products:    products,
		BestSellers: uc.bestSellers(ctx, fctx),
	}

	uc.cache.SetJSON(ctx, cacheKey, resp, uc.cacheConfig.HomeTTL())

	return resp, nil
}

// homeProducts は新着商品のファセットをリードスルーで返します
func (uc *HomeUseCase) homeProducts(ctx, fctx context.Context, limit int) ([]ProductView, error) {
	facetKey := uc.keys.HomeProductsKey(limit)

	var facet homeProductsFacet
	if uc.cache.GetJSON(ctx, facetKey, &facet) {
		return facet.Products, nil
	}

	latest, err := uc.products.FindLatest(fctx, limit)
	if err != nil {
		return nil, wrapFetchError(err, "新着商品の取得に失敗しました", nil)
	}

	views := newProductViews(latest, uc.assets)
	uc.cache.SetJSON(ctx, facetKey, homeProductsFacet{Products: views}, uc.cacheConfig.HomeProductsTTL())

	return views, nil
}

// bestSellers はベストセラー一覧を返します。二次的な集約のため、
// 失敗してもホーム全体を中断せず空の一覧に縮退します。
func (uc *HomeUseCase) bestSellers(ctx, fctx context.Context) []ProductView {
	var ids []string
	if !uc.cache.GetJSON(ctx, uc.keys.BestSellerIDsKey(), &ids) {
		fetched, err := uc.products.ListBestSellerIDs(fctx)
		if err != nil {
			slog.Warn("ベストセラーIDの取得に失敗しました。空の一覧に縮退します", "error", err)
			return []ProductView{}
		}
		ids = make([]string, 0, len(fetched))
		for _, id := range fetched {
			ids = append(ids, id.String())
		}
		uc.cache.SetJSON(ctx, uc.keys.BestSellerIDsKey(), ids, uc.cacheConfig.BestSellerIDsTTL())
	}

	if len(ids) == 0 {
		return []ProductView{}
	}

	productIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("ベストセラーIDの形式が不正です。スキップします", "id", raw)
			continue
		}
		productIDs = append(productIDs, id)
	}

	products, err := uc.products.FindByIDs(fctx, productIDs)
	if err != nil {
		slog.Warn("ベストセラー商品の取得に失敗しました。空の一覧に縮退します", "error", err)
		return []ProductView{}
	}

	return newProductViews(products, uc.assets)
}
