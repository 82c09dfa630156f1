//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_invalidator.go -package=usecase
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProductInvalidation は商品ミューテーション後の無効化対象を表します
type ProductInvalidation struct {
	ID         uuid.UUID
	Slug       string
	CategoryID uuid.UUID
	Action     string
}

// CategoryInvalidation はカテゴリミューテーション後の無効化対象を表します
type CategoryInvalidation struct {
	ID     uuid.UUID
	Slug   string
	Action string
}

type ProductInvalidator interface {
	InvalidateProduct(ctx context.Context, target ProductInvalidation)
	InvalidateProducts(ctx context.Context, ids []uuid.UUID, action string)
}

type CategoryInvalidator interface {
	InvalidateCategory(ctx context.Context, target CategoryInvalidation)
}
