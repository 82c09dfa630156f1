package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/na2na-p/storefront/internal/domain"
	"github.com/newmo-oss/ctxtime"
)

// InvalidationUseCase はミューテーション後にキャッシュ層をデータベースと
// 整合させる調整役です。各ステップは独立して封じ込められ、1つの失敗が
// 残りの削除・発行・再検証を中断することはありません。
type InvalidationUseCase struct {
	products       domain.ProductRepository
	categories     domain.CategoryRepository
	cache          CacheClient
	keys           CacheKeyGenerator
	events         EventSink
	revalidator    PageRevalidator
	warmer         CacheWarmer
	warmingEnabled bool
}

var (
	_ ProductInvalidator  = (*InvalidationUseCase)(nil)
	_ CategoryInvalidator = (*InvalidationUseCase)(nil)
)

func NewInvalidationUseCase(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	cache CacheClient,
	keys CacheKeyGenerator,
	events EventSink,
	revalidator PageRevalidator,
	warmer CacheWarmer,
	warmingEnabled bool,
) *InvalidationUseCase {
	return &InvalidationUseCase{
		products:       products,
		categories:     categories,
		cache:          cache,
		keys:           keys,
		events:         events,
		revalidator:    revalidator,
		warmer:         warmer,
		warmingEnabled: warmingEnabled,
	}
}

// InvalidateProduct は単一の商品ミューテーションに対する無効化を行います
func (uc *InvalidationUseCase) InvalidateProduct(ctx context.Context, target ProductInvalidation) {
	uc.cache.Delete(ctx, uc.keys.ProductKey(target.Slug))
	uc.cache.DeleteByPattern(ctx, uc.keys.ProductCategoryPattern(target.CategoryID.String()))
	uc.clearHomeKeys(ctx)

	uc.publish(ctx, domain.ChannelProductInvalidate, domain.InvalidationEvent{
		ResourceID:   target.ID.String(),
		ResourceSlug: target.Slug,
		RelatedID:    target.CategoryID.String(),
		Action:       target.Action,
		Timestamp:    ctxtime.Now(ctx),
	})

	paths := []string{"/", "/product/" + target.Slug}
	if categorySlug, ok := uc.resolveCategorySlug(ctx, target.CategoryID); ok {
		paths = append(paths, "/category/"+categorySlug)
	}
	uc.revalidatePaths(ctx, paths)
}

// InvalidateProducts は一括ミューテーションに対する無効化を行います。
// 影響カテゴリは重複排除され、共有キーの削除とホーム再検証は1回だけ行われます。
func (uc *InvalidationUseCase) InvalidateProducts(ctx context.Context, ids []uuid.UUID, action string) {
	if len(ids) == 0 {
		return
	}

	slugs := make([]string, 0, len(ids))
	resolved := make([]string, 0, len(ids))
	categoryIDs := make(map[uuid.UUID]struct{})
	for _, id := range ids {
		product, err := uc.products.FindByID(ctx, id)
		if err != nil {
			slog.Warn("商品の解決に失敗しました。個別キーの無効化をスキップします",
				"productId", id.String(), "error", err)
			continue
		}
		slugs = append(slugs, product.Slug().String())
		resolved = append(resolved, id.String())
		categoryIDs[product.CategoryID()] = struct{}{}
	}

	for _, slug := range slugs {
		uc.cache.Delete(ctx, uc.keys.ProductKey(slug))
	}
	for categoryID := range categoryIDs {
		uc.cache.DeleteByPattern(ctx, uc.keys.ProductCategoryPattern(categoryID.String()))
	}
	uc.clearHomeKeys(ctx)
	uc.cache.Delete(ctx, uc.keys.CategoriesAllKey())

	uc.publish(ctx, domain.ChannelProductBulkInvalidate, domain.InvalidationEvent{
		ResourceID: strings.Join(resolved, ","),
		Action:     action,
		Timestamp:  ctxtime.Now(ctx),
	})

	paths := []string{"/"}
	for _, slug := range slugs {
		paths = append(paths, "/product/"+slug)
	}
	for categoryID := range categoryIDs {
		if categorySlug, ok := uc.resolveCategorySlug(ctx, categoryID); ok {
			paths = append(paths, "/category/"+categorySlug)
		}
	}
	uc.revalidatePaths(ctx, paths)
}

// InvalidateCategory はカテゴリミューテーションに対する無効化を行います
func (uc *InvalidationUseCase) InvalidateCategory(ctx context.Context, target CategoryInvalidation) {
	uc.cache.DeleteByPattern(ctx, uc.keys.CategoryDetailPattern(target.Slug))
	uc.cache.DeleteByPattern(ctx, uc.keys.ProductCategoryPattern(target.ID.String()))
	uc.cache.DeleteByPattern(ctx, uc.keys.HomePattern())
	uc.cache.DeleteByPattern(ctx, uc.keys.HomeProductsPattern())
	uc.cache.Delete(ctx, uc.keys.CategoriesAllKey())

	uc.publish(ctx, domain.ChannelCategoryInvalidate, domain.InvalidationEvent{
		ResourceID:   target.ID.String(),
		ResourceSlug: target.Slug,
		Action:       target.Action,
		Timestamp:    ctxtime.Now(ctx),
	})

	uc.revalidatePaths(ctx, []string{"/", "/category/" + target.Slug})
}

// clearHomeKeys はホーム集約とベストセラーの共有キーを削除します
func (uc *InvalidationUseCase) clearHomeKeys(ctx context.Context) {
	uc.cache.DeleteByPattern(ctx, uc.keys.HomePattern())
	uc.cache.DeleteByPattern(ctx, uc.keys.HomeProductsPattern())
	uc.cache.Delete(ctx, uc.keys.BestSellerIDsKey())
}

func (uc *InvalidationUseCase) publish(ctx context.Context, channel string, event domain.InvalidationEvent) {
	if err := uc.events.Publish(ctx, channel, event); err != nil {
		slog.Warn("無効化イベントの発行に失敗しました", "channel", channel, "error", err)
	}
}

// resolveCategorySlug はカテゴリスラッグを防御的に解決します。
// 解決に失敗しても他のキーの無効化は中断されません。
func (uc *InvalidationUseCase) resolveCategorySlug(ctx context.Context, id uuid.UUID) (string, bool) {
	category, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		slog.Warn("カテゴリスラッグの解決に失敗しました。該当ルートの再検証をスキップします",
			"categoryId", id.String(), "error", err)
		return "", false
	}
	return category.Slug().String(), true
}

func (uc *InvalidationUseCase) revalidatePaths(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := uc.revalidator.Revalidate(ctx, path); err != nil {
			slog.Warn("ページ再検証に失敗しました", "path", path, "error", err)
		}
		if !uc.warmingEnabled {
			continue
		}
		if err := uc.warmer.Warm(ctx, path); err != nil {
			slog.Warn("キャッシュウォーミングに失敗しました", "path", path, "error", err)
		}
	}
}
