package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/usecase"
	mock_domain "github.com/na2na-p/storefront/tests/domain"
	mock_usecase "github.com/na2na-p/storefront/tests/usecase"
)

const (
	invProductID  = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
	invProductID2 = "4d5e6f7a-8b9c-4d0e-8f1a-2b3c4d5e6f70"
	invCategoryID = "5e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a8b"
)

func fixedNowContext(t *testing.T) context.Context {
	t.Helper()
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, fixedTime)
	return ctx
}

func TestInvalidationUseCase_InvalidateProduct(t *testing.T) {
	type fields struct {
		categories     func(ctrl *gomock.Controller) domain.CategoryRepository
		cache          func(ctrl *gomock.Controller) usecase.CacheClient
		events         func(ctrl *gomock.Controller) usecase.EventSink
		revalidator    func(ctrl *gomock.Controller) usecase.PageRevalidator
		warmer         func(ctrl *gomock.Controller) usecase.CacheWarmer
		warmingEnabled bool
	}
	tests := []struct {
		name   string
		fields fields
		target usecase.ProductInvalidation
	}{
		{
			name: "正常系: 商品キー・カテゴリ配下・ホームの削除とイベント発行と再検証が行われる",
			fields: fields{
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invCategoryID)).
						Return(testCategory(invCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().Delete(gomock.Any(), "product:slug:fresh-milk").Return(true)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "product:category:"+invCategoryID+":*").Return(2)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:main:*").Return(1)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:products:result:*").Return(1)
					mock.EXPECT().Delete(gomock.Any(), "bestSellers:ids").Return(true)
					return mock
				},
				events: func(ctrl *gomock.Controller) usecase.EventSink {
					mock := mock_usecase.NewMockEventSink(ctrl)
					mock.EXPECT().Publish(gomock.Any(), domain.ChannelProductInvalidate, domain.InvalidationEvent{
						ResourceID:   invProductID,
						ResourceSlug: "fresh-milk",
						RelatedID:    invCategoryID,
						Action:       domain.ActionUpdated,
						Timestamp:    fixedTime,
					}).Return(nil)
					return mock
				},
				revalidator: func(ctrl *gomock.Controller) usecase.PageRevalidator {
					mock := mock_usecase.NewMockPageRevalidator(ctrl)
					mock.EXPECT().Revalidate(gomock.Any(), "/").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/product/fresh-milk").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/category/dairy").Return(nil)
					return mock
				},
				warmer: func(ctrl *gomock.Controller) usecase.CacheWarmer {
					return mock_usecase.NewMockCacheWarmer(ctrl)
				},
				warmingEnabled: false,
			},
			target: usecase.ProductInvalidation{
				ID:         uuid.MustParse(invProductID),
				Slug:       "fresh-milk",
				CategoryID: uuid.MustParse(invCategoryID),
				Action:     domain.ActionUpdated,
			},
		},
		{
			name: "正常系: 各ステップの失敗は封じ込められ残りのステップは継続する",
			fields: fields{
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invCategoryID)).
						Return(nil, errTestDatabase)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().Delete(gomock.Any(), "product:slug:fresh-milk").Return(false)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "product:category:"+invCategoryID+":*").Return(0)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:main:*").Return(0)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:products:result:*").Return(0)
					mock.EXPECT().Delete(gomock.Any(), "bestSellers:ids").Return(false)
					return mock
				},
				events: func(ctrl *gomock.Controller) usecase.EventSink {
					mock := mock_usecase.NewMockEventSink(ctrl)
					mock.EXPECT().Publish(gomock.Any(), domain.ChannelProductInvalidate, gomock.Any()).
						Return(errors.New("publish failed"))
					return mock
				},
				revalidator: func(ctrl *gomock.Controller) usecase.PageRevalidator {
					mock := mock_usecase.NewMockPageRevalidator(ctrl)
					// カテゴリスラッグが解決できないため/category/...は再検証されない
					mock.EXPECT().Revalidate(gomock.Any(), "/").Return(errors.New("revalidate failed"))
					mock.EXPECT().Revalidate(gomock.Any(), "/product/fresh-milk").Return(nil)
					return mock
				},
				warmer: func(ctrl *gomock.Controller) usecase.CacheWarmer {
					mock := mock_usecase.NewMockCacheWarmer(ctrl)
					mock.EXPECT().Warm(gomock.Any(), "/").Return(errors.New("warm failed"))
					mock.EXPECT().Warm(gomock.Any(), "/product/fresh-milk").Return(nil)
					return mock
				},
				warmingEnabled: true,
			},
			target: usecase.ProductInvalidation{
				ID:         uuid.MustParse(invProductID),
				Slug:       "fresh-milk",
				CategoryID: uuid.MustParse(invCategoryID),
				Action:     domain.ActionDeleted,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewInvalidationUseCase(
				mock_domain.NewMockProductRepository(ctrl),
				tt.fields.categories(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				tt.fields.events(ctrl),
				tt.fields.revalidator(ctrl),
				tt.fields.warmer(ctrl),
				tt.fields.warmingEnabled,
			)

			uc.InvalidateProduct(fixedNowContext(t), tt.target)
		})
	}
}

func TestInvalidationUseCase_InvalidateProducts(t *testing.T) {
	type fields struct {
		products    func(ctrl *gomock.Controller) domain.ProductRepository
		categories  func(ctrl *gomock.Controller) domain.CategoryRepository
		cache       func(ctrl *gomock.Controller) usecase.CacheClient
		events      func(ctrl *gomock.Controller) usecase.EventSink
		revalidator func(ctrl *gomock.Controller) usecase.PageRevalidator
	}
	tests := []struct {
		name   string
		fields fields
		ids    []uuid.UUID
		action string
	}{
		{
			name: "正常系: 同一カテゴリの2商品では共有キーの削除とカテゴリ再検証が1回だけ行われる",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invProductID)).
						Return(testProduct(invProductID, "Fresh Milk", "fresh-milk", invCategoryID, ""), nil)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invProductID2)).
						Return(testProduct(invProductID2, "Aged Cheese", "aged-cheese", invCategoryID, ""), nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invCategoryID)).
						Return(testCategory(invCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().Delete(gomock.Any(), "product:slug:fresh-milk").Return(true)
					mock.EXPECT().Delete(gomock.Any(), "product:slug:aged-cheese").Return(true)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "product:category:"+invCategoryID+":*").Return(3)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:main:*").Return(1)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:products:result:*").Return(1)
					mock.EXPECT().Delete(gomock.Any(), "bestSellers:ids").Return(true)
					mock.EXPECT().Delete(gomock.Any(), "categories:all").Return(true)
					return mock
				},
				events: func(ctrl *gomock.Controller) usecase.EventSink {
					mock := mock_usecase.NewMockEventSink(ctrl)
					mock.EXPECT().Publish(gomock.Any(), domain.ChannelProductBulkInvalidate, domain.InvalidationEvent{
						ResourceID: invProductID + "," + invProductID2,
						Action:     domain.ActionBulkToggled,
						Timestamp:  fixedTime,
					}).Return(nil)
					return mock
				},
				revalidator: func(ctrl *gomock.Controller) usecase.PageRevalidator {
					mock := mock_usecase.NewMockPageRevalidator(ctrl)
					mock.EXPECT().Revalidate(gomock.Any(), "/").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/product/fresh-milk").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/product/aged-cheese").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/category/dairy").Return(nil)
					return mock
				},
			},
			ids:    []uuid.UUID{uuid.MustParse(invProductID), uuid.MustParse(invProductID2)},
			action: domain.ActionBulkToggled,
		},
		{
			name: "正常系: 解決に失敗した商品はスキップされ残りの無効化は継続する",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invProductID)).
						Return(nil, errTestDatabase)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invProductID2)).
						Return(testProduct(invProductID2, "Aged Cheese", "aged-cheese", invCategoryID, ""), nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(invCategoryID)).
						Return(testCategory(invCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().Delete(gomock.Any(), "product:slug:aged-cheese").Return(true)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "product:category:"+invCategoryID+":*").Return(1)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:main:*").Return(1)
					mock.EXPECT().DeleteByPattern(gomock.Any(), "home:products:result:*").Return(1)
					mock.EXPECT().Delete(gomock.Any(), "bestSellers:ids").Return(true)
					mock.EXPECT().Delete(gomock.Any(), "categories:all").Return(true)
					return mock
				},
				events: func(ctrl *gomock.Controller) usecase.EventSink {
					mock := mock_usecase.NewMockEventSink(ctrl)
					mock.EXPECT().Publish(gomock.Any(), domain.ChannelProductBulkInvalidate, domain.InvalidationEvent{
						ResourceID: invProductID2,
						Action:     domain.ActionBulkToggled,
						Timestamp:  fixedTime,
					}).Return(nil)
					return mock
				},
				revalidator: func(ctrl *gomock.Controller) usecase.PageRevalidator {
					mock := mock_usecase.NewMockPageRevalidator(ctrl)
					mock.EXPECT().Revalidate(gomock.Any(), "/").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/product/aged-cheese").Return(nil)
					mock.EXPECT().Revalidate(gomock.Any(), "/category/dairy").Return(nil)
					return mock
				},
			},
			ids:    []uuid.UUID{uuid.MustParse(invProductID), uuid.MustParse(invProductID2)},
			action: domain.ActionBulkToggled,
		},
		{
			name: "正常系: 空のID一覧では何も行われない",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					return mock_domain.NewMockProductRepository(ctrl)
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					return mock_domain.NewMockCategoryRepository(ctrl)
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					return mock_usecase.NewMockCacheClient(ctrl)
				},
				events: func(ctrl *gomock.Controller) usecase.EventSink {
					return mock_usecase.NewMockEventSink(ctrl)
				},
				revalidator: func(ctrl *gomock.Controller) usecase.PageRevalidator {
					return mock_usecase.NewMockPageRevalidator(ctrl)
				},
			},
			ids:    nil,
			action: domain.ActionBulkToggled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewInvalidationUseCase(
				tt.fields.products(ctrl),
				tt.fields.categories(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				tt.fields.events(ctrl),
				tt.fields.revalidator(ctrl),
				mock_usecase.NewMockCacheWarmer(ctrl),
				false,
			)

			uc.InvalidateProducts(fixedNowContext(t), tt.ids, tt.action)
		})
	}
}

func TestInvalidationUseCase_InvalidateCategory(t *testing.T) {
	t.Run("正常系: カテゴリ関連のキーが削除されベストセラーIDは温存される", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cache := mock_usecase.NewMockCacheClient(ctrl)
		cache.EXPECT().DeleteByPattern(gomock.Any(), "category:slug:dairy:*").Return(2)
		cache.EXPECT().DeleteByPattern(gomock.Any(), "product:category:"+invCategoryID+":*").Return(1)
		cache.EXPECT().DeleteByPattern(gomock.Any(), "home:main:*").Return(1)
		cache.EXPECT().DeleteByPattern(gomock.Any(), "home:products:result:*").Return(1)
		cache.EXPECT().Delete(gomock.Any(), "categories:all").Return(true)

		events := mock_usecase.NewMockEventSink(ctrl)
		events.EXPECT().Publish(gomock.Any(), domain.ChannelCategoryInvalidate, domain.InvalidationEvent{
			ResourceID:   invCategoryID,
			ResourceSlug: "dairy",
			Action:       domain.ActionUpdated,
			Timestamp:    fixedTime,
		}).Return(nil)

		revalidator := mock_usecase.NewMockPageRevalidator(ctrl)
		revalidator.EXPECT().Revalidate(gomock.Any(), "/").Return(nil)
		revalidator.EXPECT().Revalidate(gomock.Any(), "/category/dairy").Return(nil)

		uc := usecase.NewInvalidationUseCase(
			mock_domain.NewMockProductRepository(ctrl),
			mock_domain.NewMockCategoryRepository(ctrl),
			cache,
			stubCacheKeys(ctrl),
			events,
			revalidator,
			mock_usecase.NewMockCacheWarmer(ctrl),
			false,
		)

		uc.InvalidateCategory(fixedNowContext(t), usecase.CategoryInvalidation{
			ID:     uuid.MustParse(invCategoryID),
			Slug:   "dairy",
			Action: domain.ActionUpdated,
		})
	})
}
