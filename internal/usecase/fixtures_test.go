package usecase_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/usecase"
	mock_usecase "github.com/na2na-p/storefront/tests/usecase"
)

var fixedTime = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

// errTestDatabase は上流失敗を表すテスト用エラーです。
// wrapFetchErrorが%wで包むためerrors.Isで突き合わせられます。
var errTestDatabase = errors.New("database connection error")

func testProduct(id, name, slug, categoryID, imageKey string) *domain.Product {
	slugValue, _ := domain.NewSlug(slug)
	price, _ := domain.NewPrice(500)
	discountPrice, _ := domain.NewPrice(400)
	product, _ := domain.ReconstructProduct(
		uuid.MustParse(id),
		name,
		slugValue,
		"",
		price,
		discountPrice,
		imageKey,
		uuid.MustParse(categoryID),
		true,
		true,
		fixedTime,
		fixedTime,
	)
	return product
}

func testCategory(id, name, slug string) *domain.Category {
	slugValue, _ := domain.NewSlug(slug)
	category, _ := domain.ReconstructCategory(
		uuid.MustParse(id),
		name,
		slugValue,
		"",
		"",
		true,
		fixedTime,
		fixedTime,
	)
	return category
}

// stubCacheKeys は本番のキー形式を返すキー生成器です。
// キー文字列はテスト内の期待値と突き合わせるため固定します。
func stubCacheKeys(ctrl *gomock.Controller) usecase.CacheKeyGenerator {
	mock := mock_usecase.NewMockCacheKeyGenerator(ctrl)
	mock.EXPECT().HomeKey(gomock.Any()).DoAndReturn(func(limit int) string {
		return fmt.Sprintf("home:main:%d", limit)
	}).AnyTimes()
	mock.EXPECT().HomeProductsKey(gomock.Any()).DoAndReturn(func(limit int) string {
		return fmt.Sprintf("home:products:result:%d", limit)
	}).AnyTimes()
	mock.EXPECT().BestSellerIDsKey().Return("bestSellers:ids").AnyTimes()
	mock.EXPECT().CategoriesAllKey().Return("categories:all").AnyTimes()
	mock.EXPECT().CategoryDetailKey(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(slug string, page, limit int) string {
		return fmt.Sprintf("category:slug:%s:page:%d:limit:%d", slug, page, limit)
	}).AnyTimes()
	mock.EXPECT().ProductKey(gomock.Any()).DoAndReturn(func(slug string) string {
		return "product:slug:" + slug
	}).AnyTimes()
	mock.EXPECT().RelatedProductsKey(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(categoryID, excludeID string, limit int) string {
		if excludeID == "" {
			excludeID = "none"
		}
		return fmt.Sprintf("product:category:%s:exclude:%s:limit:%d", categoryID, excludeID, limit)
	}).AnyTimes()
	mock.EXPECT().ProductCategoryPattern(gomock.Any()).DoAndReturn(func(categoryID string) string {
		return fmt.Sprintf("product:category:%s:*", categoryID)
	}).AnyTimes()
	mock.EXPECT().CategoryDetailPattern(gomock.Any()).DoAndReturn(func(slug string) string {
		return fmt.Sprintf("category:slug:%s:*", slug)
	}).AnyTimes()
	mock.EXPECT().HomePattern().Return("home:main:*").AnyTimes()
	mock.EXPECT().HomeProductsPattern().Return("home:products:result:*").AnyTimes()
	return mock
}

func stubCacheConfig(ctrl *gomock.Controller) usecase.CacheConfig {
	mock := mock_usecase.NewMockCacheConfig(ctrl)
	mock.EXPECT().HomeTTL().Return(30 * time.Minute).AnyTimes()
	mock.EXPECT().HomeProductsTTL().Return(30 * time.Minute).AnyTimes()
	mock.EXPECT().BestSellerIDsTTL().Return(30 * time.Minute).AnyTimes()
	mock.EXPECT().CategoriesAllTTL().Return(6 * time.Hour).AnyTimes()
	mock.EXPECT().CategoryDetailTTL().Return(6 * time.Hour).AnyTimes()
	mock.EXPECT().ProductTTL().Return(30 * time.Minute).AnyTimes()
	mock.EXPECT().RelatedProductsTTL().Return(30 * time.Minute).AnyTimes()
	return mock
}

func stubAssets(ctrl *gomock.Controller) usecase.AssetURLResolver {
	mock := mock_usecase.NewMockAssetURLResolver(ctrl)
	mock.EXPECT().ImageURL(gomock.Any()).DoAndReturn(func(key string) string {
		return "https://assets.example.com/" + key
	}).AnyTimes()
	return mock
}
