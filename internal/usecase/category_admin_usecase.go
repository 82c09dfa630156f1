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

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// CategoryAdminUseCase はカテゴリのミューテーションを担当します
type CategoryAdminUseCase struct {
	categories  domain.CategoryRepository
	invalidator CategoryInvalidator
	images      ImageStorage
	storageKeys StorageKeyGenerator
}

func NewCategoryAdminUseCase(
	categories domain.CategoryRepository,
	invalidator CategoryInvalidator,
	images ImageStorage,
	storageKeys StorageKeyGenerator,
) *CategoryAdminUseCase {
	return &CategoryAdminUseCase{
		categories:  categories,
		invalidator: invalidator,
		images:      images,
		storageKeys: storageKeys,
	}
}

func (uc *CategoryAdminUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	slug, err := domain.NewSlug(input.Slug)
	if err != nil {
		return nil, ErrInvalidSlug
	}

	if _, err := uc.categories.FindBySlug(ctx, slug); err == nil {
		return nil, ErrSlugConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("スラッグの重複確認に失敗しました: %w", err)
	}

	category, err := domain.NewCategory(ctx, input.Name, slug, input.Description)
	if err != nil {
		return nil, err
	}

	if err := uc.categories.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("カテゴリの保存に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateCategory(ctx, CategoryInvalidation{
		ID:     category.ID(),
		Slug:   category.Slug().String(),
		Action: domain.ActionCreated,
	})

	return category, nil
}

func (uc *CategoryAdminUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("カテゴリの取得に失敗しました: %w", err)
	}

	if input.Name != nil {
		if err := category.Rename(ctx, *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		category.ChangeDescription(ctx, *input.Description)
	}
	if input.IsActive != nil {
		category.SetActive(ctx, *input.IsActive)
	}

	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("カテゴリの更新に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateCategory(ctx, CategoryInvalidation{
		ID:     category.ID(),
		Slug:   category.Slug().String(),
		Action: domain.ActionUpdated,
	})

	return category, nil
}

func (uc *CategoryAdminUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	// 削除後はスラッグを解決できないため、先に取得しておく
	category, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("カテゴリの取得に失敗しました: %w", err)
	}

	if err := uc.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("カテゴリの削除に失敗しました: %w", err)
	}

	if category.ImageKey() != "" {
		if err := uc.images.DeleteObject(ctx, category.ImageKey()); err != nil {
			slog.Warn("カテゴリ画像の削除に失敗しました", "key", category.ImageKey(), "error", err)
		}
	}

	uc.invalidator.InvalidateCategory(ctx, CategoryInvalidation{
		ID:     category.ID(),
		Slug:   category.Slug().String(),
		Action: domain.ActionDeleted,
	})

	return nil
}

func (uc *CategoryAdminUseCase) AttachCategoryImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.Category, error) {
	category, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("カテゴリの取得に失敗しました: %w", err)
	}

	key := uc.storageKeys.CategoryImageKey(category.ID().String(), filename)
	if err := uc.images.PutObject(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("カテゴリ画像のアップロードに失敗しました: %w", err)
	}

	category.AttachImage(ctx, key)
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("カテゴリの更新に失敗しました: %w", err)
	}

	uc.invalidator.InvalidateCategory(ctx, CategoryInvalidation{
		ID:     category.ID(),
		Slug:   category.Slug().String(),
		Action: domain.ActionUpdated,
	})

	return category, nil
}
