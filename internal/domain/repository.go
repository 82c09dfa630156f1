//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_repository.go -package=domain
package domain

import (
	"context"

	"github.com/google/uuid"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug Slug) (*Product, error)
	// FindByCategory はカテゴリ配下の有効な商品をページングして返します。
	// 2番目の戻り値は総件数です。
	FindByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) ([]*Product, int, error)
	// FindRelated はexcludeIDを除いた同一カテゴリの商品を返します。
	// excludeIDがuuid.Nilの場合は除外しません。
	FindRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*Product, error)
	FindLatest(ctx context.Context, limit int) ([]*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Product, error)
	ListBestSellerIDs(ctx context.Context) ([]uuid.UUID, error)
	Save(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActiveBulk(ctx context.Context, ids []uuid.UUID, active bool) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug Slug) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
