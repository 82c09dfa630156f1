package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/na2na-p/storefront/internal/domain"
)

type CategoryRepositoryImpl struct {
	dao *CategoryDAO
}

func NewCategoryRepository(pool PoolInterface) domain.CategoryRepository {
	return &CategoryRepositoryImpl{
		dao: NewCategoryDAO(pool),
	}
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	row, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return categoryRowToDomain(row)
}

func (r *CategoryRepositoryImpl) FindBySlug(ctx context.Context, slug domain.Slug) (*domain.Category, error) {
	row, err := r.dao.FindBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return categoryRowToDomain(row)
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		category, err := categoryRowToDomain(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) Save(ctx context.Context, category *domain.Category) error {
	return r.dao.Insert(ctx, categoryDomainToRow(category))
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *domain.Category) error {
	err := r.dao.Update(ctx, categoryDomainToRow(category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.dao.Delete(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func categoryRowToDomain(row *CategoryRow) (*domain.Category, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正なカテゴリID %q", domain.ErrInvalidRecord, row.ID)
	}

	slug, err := domain.NewSlug(row.Slug)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正なスラッグ %q", domain.ErrInvalidRecord, row.Slug)
	}

	category, err := domain.ReconstructCategory(
		id,
		row.Name,
		slug,
		row.Description,
		row.ImageKey,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	return category, nil
}

func categoryDomainToRow(category *domain.Category) *CategoryRow {
	return &CategoryRow{
		ID:          category.ID().String(),
		Name:        category.Name(),
		Slug:        category.Slug().String(),
		Description: category.Description(),
		ImageKey:    category.ImageKey(),
		IsActive:    category.IsActive(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
}
