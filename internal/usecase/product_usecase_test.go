package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/usecase"
	mock_domain "github.com/na2na-p/storefront/tests/domain"
	mock_usecase "github.com/na2na-p/storefront/tests/usecase"
)

const (
	prodProductID  = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	prodExcludeID  = "9f8e7d6c-5b4a-4392-8170-6e5d4c3b2a19"
	prodCategoryID = "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e"
)

func prodProductView() usecase.ProductView {
	return usecase.ProductView{
		ID:              prodProductID,
		Name:            "Fresh Milk",
		Slug:            "fresh-milk",
		Price:           500,
		DiscountPrice:   400,
		DiscountPercent: 20,
		CategoryID:      prodCategoryID,
		IsBestSeller:    true,
	}
}

func TestProductUseCase_GetProductDetail(t *testing.T) {
	type fields struct {
		products   func(ctrl *gomock.Controller) domain.ProductRepository
		categories func(ctrl *gomock.Controller) domain.CategoryRepository
		cache      func(ctrl *gomock.Controller) usecase.CacheClient
	}
	tests := []struct {
		name    string
		fields  fields
		slug    string
		want    *usecase.ProductDetailResponse
		wantErr error
	}{
		{
			name: "正常系: キャッシュヒット時はsource=cacheで返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					return mock_domain.NewMockProductRepository(ctrl)
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					return mock_domain.NewMockCategoryRepository(ctrl)
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "product:slug:fresh-milk", gomock.Any()).DoAndReturn(
						func(_ context.Context, _ string, dest any) bool {
							*dest.(*usecase.ProductDetailResponse) = usecase.ProductDetailResponse{
								Success: true,
								Source:  usecase.SourceAPI,
								Product: prodProductView(),
							}
							return true
						})
					return mock
				},
			},
			slug: "fresh-milk",
			want: &usecase.ProductDetailResponse{
				Success: true,
				Source:  usecase.SourceCache,
				Product: prodProductView(),
			},
		},
		{
			name: "正常系: キャッシュミス時は商品とカテゴリを取得して書き戻す",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					slug, _ := domain.NewSlug("fresh-milk")
					mock.EXPECT().FindBySlug(gomock.Any(), slug).
						Return(testProduct(prodProductID, "Fresh Milk", "fresh-milk", prodCategoryID, ""), nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(prodCategoryID)).
						Return(testCategory(prodCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "product:slug:fresh-milk", gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), "product:slug:fresh-milk", gomock.Any(), 30*time.Minute).Return(true)
					return mock
				},
			},
			slug: "fresh-milk",
			want: &usecase.ProductDetailResponse{
				Success:  true,
				Source:   usecase.SourceAPI,
				Product:  prodProductView(),
				Category: &usecase.CategoryView{ID: prodCategoryID, Name: "Dairy", Slug: "dairy"},
			},
		},
		{
			name: "正常系: カテゴリの解決に失敗しても商品詳細自体は返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					slug, _ := domain.NewSlug("fresh-milk")
					mock.EXPECT().FindBySlug(gomock.Any(), slug).
						Return(testProduct(prodProductID, "Fresh Milk", "fresh-milk", prodCategoryID, ""), nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindByID(gomock.Any(), uuid.MustParse(prodCategoryID)).
						Return(nil, domain.ErrNotFound)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "product:slug:fresh-milk", gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), "product:slug:fresh-milk", gomock.Any(), 30*time.Minute).Return(true)
					return mock
				},
			},
			slug: "fresh-milk",
			want: &usecase.ProductDetailResponse{
				Success: true,
				Source:  usecase.SourceAPI,
				Product: prodProductView(),
			},
		},
		{
			name: "異常系: スラッグの形式が不正な場合、ErrInvalidSlugが返る",
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
			},
			slug:    "Fresh Milk!",
			wantErr: usecase.ErrInvalidSlug,
		},
		{
			name: "異常系: 商品が存在しない場合、ErrProductNotFoundが返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					return mock_domain.NewMockCategoryRepository(ctrl)
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
					return mock
				},
			},
			slug:    "ghost-product",
			wantErr: usecase.ErrProductNotFound,
		},
		{
			name: "異常系: 取得したレコードが構造チェックに失敗した場合、ErrInvalidResponseShapeが返りキャッシュされない",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).
						Return(nil, fmt.Errorf("%w: 不正な商品ID", domain.ErrInvalidRecord))
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					return mock_domain.NewMockCategoryRepository(ctrl)
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
					return mock
				},
			},
			slug:    "fresh-milk",
			wantErr: usecase.ErrInvalidResponseShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewProductUseCase(
				tt.fields.products(ctrl),
				tt.fields.categories(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				stubCacheConfig(ctrl),
				stubAssets(ctrl),
				time.Second,
			)

			got, err := uc.GetProductDetail(context.Background(), tt.slug)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetProductDetail() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetProductDetail() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetProductDetail() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProductUseCase_GetRelatedProducts(t *testing.T) {
	type fields struct {
		products func(ctrl *gomock.Controller) domain.ProductRepository
		cache    func(ctrl *gomock.Controller) usecase.CacheClient
	}
	type args struct {
		categoryID uuid.UUID
		excludeID  uuid.UUID
		limit      int
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    *usecase.RelatedProductsResponse
		wantErr error
	}{
		{
			name: "正常系: 除外ID付きでキャッシュミス時はデータベースから取得する",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindRelated(gomock.Any(), uuid.MustParse(prodCategoryID), uuid.MustParse(prodExcludeID), 4).
						Return([]*domain.Product{testProduct(prodProductID, "Fresh Milk", "fresh-milk", prodCategoryID, "")}, nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					key := "product:category:" + prodCategoryID + ":exclude:" + prodExcludeID + ":limit:4"
					mock.EXPECT().GetJSON(gomock.Any(), key, gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), key, gomock.Any(), 30*time.Minute).Return(true)
					return mock
				},
			},
			args: args{
				categoryID: uuid.MustParse(prodCategoryID),
				excludeID:  uuid.MustParse(prodExcludeID),
				limit:      0,
			},
			want: &usecase.RelatedProductsResponse{
				Success:  true,
				Source:   usecase.SourceAPI,
				Products: []usecase.ProductView{prodProductView()},
			},
		},
		{
			name: "正常系: 除外IDがuuid.Nilの場合はnoneセグメントのキーが使われる",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindRelated(gomock.Any(), uuid.MustParse(prodCategoryID), uuid.Nil, 4).
						Return([]*domain.Product{}, nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					key := "product:category:" + prodCategoryID + ":exclude:none:limit:4"
					mock.EXPECT().GetJSON(gomock.Any(), key, gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), key, gomock.Any(), 30*time.Minute).Return(true)
					return mock
				},
			},
			args: args{
				categoryID: uuid.MustParse(prodCategoryID),
				excludeID:  uuid.Nil,
				limit:      4,
			},
			want: &usecase.RelatedProductsResponse{
				Success:  true,
				Source:   usecase.SourceAPI,
				Products: []usecase.ProductView{},
			},
		},
		{
			name: "異常系: 取得が期限超過した場合、ErrUpstreamTimeoutが返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindRelated(gomock.Any(), gomock.Any(), gomock.Any(), 4).
						Return(nil, context.DeadlineExceeded)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
					return mock
				},
			},
			args: args{
				categoryID: uuid.MustParse(prodCategoryID),
				excludeID:  uuid.Nil,
				limit:      4,
			},
			wantErr: usecase.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewProductUseCase(
				tt.fields.products(ctrl),
				mock_domain.NewMockCategoryRepository(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				stubCacheConfig(ctrl),
				stubAssets(ctrl),
				time.Second,
			)

			got, err := uc.GetRelatedProducts(context.Background(), tt.args.categoryID, tt.args.excludeID, tt.args.limit)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetRelatedProducts() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetRelatedProducts() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetRelatedProducts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
