package usecase_test

import (
	"context"
	"errors"
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
	catProductID  = "0d9e8f7a-6b5c-4d3e-8f1a-2b3c4d5e6f70"
	catCategoryID = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

func TestCategoryUseCase_ListCategories(t *testing.T) {
	type fields struct {
		categories func(ctrl *gomock.Controller) domain.CategoryRepository
		cache      func(ctrl *gomock.Controller) usecase.CacheClient
	}
	tests := []struct {
		name    string
		fields  fields
		want    *usecase.CategoriesResponse
		wantErr error
	}{
		{
			name: "正常系: キャッシュヒット時はsource=cacheで返る",
			fields: fields{
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					return mock_domain.NewMockCategoryRepository(ctrl)
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "categories:all", gomock.Any()).DoAndReturn(
						func(_ context.Context, _ string, dest any) bool {
							*dest.(*usecase.CategoriesResponse) = usecase.CategoriesResponse{
								Success:    true,
								Source:     usecase.SourceAPI,
								Categories: []usecase.CategoryView{{ID: catCategoryID, Name: "Dairy", Slug: "dairy"}},
							}
							return true
						})
					return mock
				},
			},
			want: &usecase.CategoriesResponse{
				Success:    true,
				Source:     usecase.SourceCache,
				Categories: []usecase.CategoryView{{ID: catCategoryID, Name: "Dairy", Slug: "dairy"}},
			},
		},
		{
			name: "正常系: キャッシュミス時はデータベースから取得して書き戻す",
			fields: fields{
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().List(gomock.Any()).Return([]*domain.Category{testCategory(catCategoryID, "Dairy", "dairy")}, nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "categories:all", gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), "categories:all", gomock.Any(), 6*time.Hour).Return(true)
					return mock
				},
			},
			want: &usecase.CategoriesResponse{
				Success:    true,
				Source:     usecase.SourceAPI,
				Categories: []usecase.CategoryView{{ID: catCategoryID, Name: "Dairy", Slug: "dairy"}},
			},
		},
		{
			name: "異常系: 取得が期限超過した場合、ErrUpstreamTimeoutが返る",
			fields: fields{
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "categories:all", gomock.Any()).Return(false)
					return mock
				},
			},
			wantErr: usecase.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewCategoryUseCase(
				mock_domain.NewMockProductRepository(ctrl),
				tt.fields.categories(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				stubCacheConfig(ctrl),
				stubAssets(ctrl),
				time.Second,
			)

			got, err := uc.ListCategories(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ListCategories() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListCategories() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ListCategories() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCategoryUseCase_GetCategoryDetail(t *testing.T) {
	type fields struct {
		products   func(ctrl *gomock.Controller) domain.ProductRepository
		categories func(ctrl *gomock.Controller) domain.CategoryRepository
		cache      func(ctrl *gomock.Controller) usecase.CacheClient
	}
	type args struct {
		slug  string
		page  int
		limit int
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		want    *usecase.CategoryDetailResponse
		wantErr error
	}{
		{
			name: "正常系: キャッシュミス時は2ページ目をページングして取得する",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					product := testProduct(catProductID, "Fresh Milk", "fresh-milk", catCategoryID, "")
					mock.EXPECT().FindByCategory(gomock.Any(), uuid.MustParse(catCategoryID), 2, 12).
						Return([]*domain.Product{product}, 25, nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					slug, _ := domain.NewSlug("dairy")
					mock.EXPECT().FindBySlug(gomock.Any(), slug).Return(testCategory(catCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "category:slug:dairy:page:2:limit:12", gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), "category:slug:dairy:page:2:limit:12", gomock.Any(), 6*time.Hour).Return(true)
					return mock
				},
			},
			args: args{slug: "dairy", page: 2, limit: 12},
			want: &usecase.CategoryDetailResponse{
				Success:  true,
				Source:   usecase.SourceAPI,
				Category: usecase.CategoryView{ID: catCategoryID, Name: "Dairy", Slug: "dairy"},
				Products: []usecase.ProductView{{
					ID:              catProductID,
					Name:            "Fresh Milk",
					Slug:            "fresh-milk",
					Price:           500,
					DiscountPrice:   400,
					DiscountPercent: 20,
					CategoryID:      catCategoryID,
					IsBestSeller:    true,
				}},
				Pagination: domain.Pagination{
					Page:        2,
					Limit:       12,
					TotalItems:  25,
					TotalPages:  3,
					HasNextPage: true,
					HasPrevPage: true,
				},
			},
		},
		{
			name: "正常系: 商品0件のページも正常なレスポンスとして返りキャッシュされる",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindByCategory(gomock.Any(), uuid.MustParse(catCategoryID), 1, 12).
						Return([]*domain.Product{}, 0, nil)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					slug, _ := domain.NewSlug("dairy")
					mock.EXPECT().FindBySlug(gomock.Any(), slug).Return(testCategory(catCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), "category:slug:dairy:page:1:limit:12", gomock.Any()).Return(false)
					mock.EXPECT().SetJSON(gomock.Any(), "category:slug:dairy:page:1:limit:12", gomock.Any(), 6*time.Hour).Return(true)
					return mock
				},
			},
			args: args{slug: "dairy", page: 0, limit: 0},
			want: &usecase.CategoryDetailResponse{
				Success:  true,
				Source:   usecase.SourceAPI,
				Category: usecase.CategoryView{ID: catCategoryID, Name: "Dairy", Slug: "dairy"},
				Products: []usecase.ProductView{},
				Pagination: domain.Pagination{
					Page:       1,
					Limit:      12,
					TotalItems: 0,
					TotalPages: 0,
				},
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
			args:    args{slug: "Dairy Products", page: 1, limit: 12},
			wantErr: usecase.ErrInvalidSlug,
		},
		{
			name: "異常系: カテゴリが存在しない場合、ErrCategoryNotFoundが返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					return mock_domain.NewMockProductRepository(ctrl)
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					mock.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
					return mock
				},
			},
			args:    args{slug: "unknown", page: 1, limit: 12},
			wantErr: usecase.ErrCategoryNotFound,
		},
		{
			name: "異常系: 商品の取得が期限超過した場合、ErrUpstreamTimeoutが返る",
			fields: fields{
				products: func(ctrl *gomock.Controller) domain.ProductRepository {
					mock := mock_domain.NewMockProductRepository(ctrl)
					mock.EXPECT().FindByCategory(gomock.Any(), gomock.Any(), 1, 12).
						Return(nil, 0, context.DeadlineExceeded)
					return mock
				},
				categories: func(ctrl *gomock.Controller) domain.CategoryRepository {
					mock := mock_domain.NewMockCategoryRepository(ctrl)
					slug, _ := domain.NewSlug("dairy")
					mock.EXPECT().FindBySlug(gomock.Any(), slug).Return(testCategory(catCategoryID, "Dairy", "dairy"), nil)
					return mock
				},
				cache: func(ctrl *gomock.Controller) usecase.CacheClient {
					mock := mock_usecase.NewMockCacheClient(ctrl)
					mock.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
					return mock
				},
			},
			args:    args{slug: "dairy", page: 1, limit: 12},
			wantErr: usecase.ErrUpstreamTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			uc := usecase.NewCategoryUseCase(
				tt.fields.products(ctrl),
				tt.fields.categories(ctrl),
				tt.fields.cache(ctrl),
				stubCacheKeys(ctrl),
				stubCacheConfig(ctrl),
				stubAssets(ctrl),
				time.Second,
			)

			got, err := uc.GetCategoryDetail(context.Background(), tt.args.slug, tt.args.page, tt.args.limit)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetCategoryDetail() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCategoryDetail() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetCategoryDetail() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
