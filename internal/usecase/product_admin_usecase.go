package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/na2na-p/storefront/internal/domain"
)

type CreateProductInput struct {
	Name          string
	Slug          string
	Description   string
	Price         int64
	DiscountPrice int64
	CategoryID    string
	IsBestSeller  bool
}

type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *int64
	DiscountPrice *int64
	IsBestSeller  *bool
	IsActive      *bool
}

// ProductAdminUseCase は商品のミューテーションを担当します。
// データベース書き込みの成功後に無効化調整役を起動します。
type ProductAdminUseCase struct {
	products    domain.ProductRepository
	categories  domain.CategoryRepository
	invalidator ProductInvalidator
	images      ImageStorage
	storageKeys StorageKeyGenerator
}

func NewProductAdminUseCase(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	invalidator ProductInvalidator,
	images ImageStorage,
	storageKeys StorageKeyGenerator,
) *ProductAdminUseCase {
	return &ProductAdminUseCase{
		products:    products,
		categories:  categories,
		invalidator: invalidator,
		images:      images,
		storageKeys: storageKeys,
	}
}

func (uc *ProductAdminUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	slug, err := domain.NewSlug(input.Slug)
	if err != nil {
		return nil, ErrInvalidSlug
	}

	price, err := domain.NewPrice(input.Price)
	if err != nil {
		return nil, err
	}
	discountPrice, err := domain.NewPrice(input.DiscountPrice)
	if err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := uc.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("カテゴリの確認に失敗しました: %w", err)
	}

	if _, err := uc.products.FindBySlug(ctx, slug); err == nil {
		return nil, ErrSlugConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("スラッグの重複確認に失敗しました: %w", err)
	}

	product, err := domain.NewProduct(ctx, input.Name, slug, input.Description, price, discountPrice, categoryID, input.IsBestSeller)
	if err != nil {
		return nil, err
	}

	if err := uc.products.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("商品の保存に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateProduct(ctx, ProductInvalidation{
		ID:         product.ID(),
		Slug:       product.Slug().String(),
		CategoryID: product.CategoryID(),
		Action:     domain.ActionCreated,
	})

	return product, nil
}

func (uc *ProductAdminUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("商品の取得に失敗しました: %w", err)
	}

	if input.Name != nil {
		if err := product.Rename(ctx, *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		product.ChangeDescription(ctx, *input.Description)
	}
	if input.Price != nil || input.DiscountPrice != nil {
		priceValue := product.Price().Int64()
		if input.Price != nil {
			priceValue = *input.Price
		}
		discountValue := product.DiscountPrice().Int64()
		if input.DiscountPrice != nil {
			discountValue = *input.DiscountPrice
		}
		price, err := domain.NewPrice(priceValue)
		if err != nil {
			return nil, err
		}
		discountPrice, err := domain.NewPrice(discountValue)
		if err != nil {
			return nil, err
		}
		if err := product.ChangePrice(ctx, price, discountPrice); err != nil {
			return nil, err
		}
	}
	if input.IsBestSeller != nil {
		product.MarkBestSeller(ctx, *input.IsBestSeller)
	}
	if input.IsActive != nil {
		product.SetActive(ctx, *input.IsActive)
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("商品の更新に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateProduct(ctx, ProductInvalidation{
		ID:         product.ID(),
		Slug:       product.Slug().String(),
		CategoryID: product.CategoryID(),
		Action:     domain.ActionUpdated,
	})

	return product, nil
}

func (uc *ProductAdminUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("商品の取得に失敗しました: %w", err)
	}

	if err := uc.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("商品の削除に失敗しました: %w", err)
	}

	if product.ImageKey() != "" {
		if err := uc.images.DeleteObject(ctx, product.ImageKey()); err != nil {
			slog.Warn("商品画像の削除に失敗しました", "key", product.ImageKey(), "error", err)
		}
	}

	uc.invalidator.InvalidateProduct(ctx, ProductInvalidation{
		ID:         product.ID(),
		Slug:       product.Slug().String(),
		CategoryID: product.CategoryID(),
		Action:     domain.ActionDeleted,
	})

	return nil
}

// SetActiveBulk は複数商品の有効・無効を一括で切り替えます
func (uc *ProductAdminUseCase) SetActiveBulk(ctx context.Context, ids []uuid.UUID, active bool) error {
	if len(ids) == 0 {
		return nil
	}

	if err := uc.products.SetActiveBulk(ctx, ids, active); err != nil {
		return fmt.Errorf("商品の一括切り替えに失敗しました: %w", err)
	}

	uc.invalidator.InvalidateProducts(ctx, ids, domain.ActionBulkToggled)

	return nil
}

func (uc *ProductAdminUseCase) AttachProductImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.Product, error) {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("商品の取得に失敗しました: %w", err)
	}

	key := uc.storageKeys.ProductImageKey(product.ID().String(), filename)
	if err := uc.images.PutObject(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("商品画像のアップロードに失敗しました: %w", err)
	}

	product.AttachImage(ctx, key)
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("商品の更新に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateProduct(ctx, ProductInvalidation{
		ID:         product.ID(),
		Slug:       product.Slug().String(),
		CategoryID: product.CategoryID(),
		Action:     domain.ActionUpdated,
	})

	return product, nil
}
