package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/newmo-oss/ctxtime"

	"github.com/na2na-p/storefront/internal/domain"
)

type ProductRepositoryImpl struct {
	dao *ProductDAO
}

func NewProductRepository(pool PoolInterface) domain.ProductRepository {
	return &ProductRepositoryImpl{
		dao: NewProductDAO(pool),
	}
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row, err := r.dao.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return productRowToDomain(row)
}

func (r *ProductRepositoryImpl) FindBySlug(ctx context.Context, slug domain.Slug) (*domain.Product, error) {
	row, err := r.dao.FindBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return productRowToDomain(row)
}

func (r *ProductRepositoryImpl) FindByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) ([]*domain.Product, int, error) {
	total, err := r.dao.CountByCategory(ctx, categoryID.String())
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := r.dao.FindByCategory(ctx, categoryID.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}

	products, err := productRowsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) FindRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*domain.Product, error) {
	exclude := ""
	if excludeID != uuid.Nil {
		exclude = excludeID.String()
	}

	rows, err := r.dao.FindRelated(ctx, categoryID.String(), exclude, limit)
	if err != nil {
		return nil, err
	}

	return productRowsToDomain(rows)
}

func (r *ProductRepositoryImpl) FindLatest(ctx context.Context, limit int) ([]*domain.Product, error) {
	rows, err := r.dao.FindLatest(ctx, limit)
	if err != nil {
		return nil, err
	}

	return productRowsToDomain(rows)
}

func (r *ProductRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.dao.FindByIDs(ctx, uuidsToStrings(ids))
	if err != nil {
		return nil, err
	}

	return productRowsToDomain(rows)
}

func (r *ProductRepositoryImpl) ListBestSellerIDs(ctx context.Context) ([]uuid.UUID, error) {
	rawIDs, err := r.dao.ListBestSellerIDs(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: 不正な商品ID %q", domain.ErrInvalidRecord, raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *ProductRepositoryImpl) Save(ctx context.Context, product *domain.Product) error {
	return r.dao.Insert(ctx, productDomainToRow(product))
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	err := r.dao.Update(ctx, productDomainToRow(product))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.dao.Delete(ctx, id.String())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ProductRepositoryImpl) SetActiveBulk(ctx context.Context, ids []uuid.UUID, active bool) error {
	if len(ids) == 0 {
		return nil
	}

	return r.dao.SetActiveBulk(ctx, uuidsToStrings(ids), active, ctxtime.Now(ctx))
}

func uuidsToStrings(ids []uuid.UUID) []string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}
	return strs
}

func productRowsToDomain(rows []*ProductRow) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := productRowToDomain(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func productRowToDomain(row *ProductRow) (*domain.Product, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正な商品ID %q", domain.ErrInvalidRecord, row.ID)
	}

	categoryID, err := uuid.Parse(row.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正なカテゴリID %q", domain.ErrInvalidRecord, row.CategoryID)
	}

	slug, err := domain.NewSlug(row.Slug)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正なスラッグ %q", domain.ErrInvalidRecord, row.Slug)
	}

	price, err := domain.NewPrice(row.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正な価格 %d", domain.ErrInvalidRecord, row.Price)
	}

	discountPrice, err := domain.NewPrice(row.DiscountPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: 不正な割引価格 %d", domain.ErrInvalidRecord, row.DiscountPrice)
	}

	product, err := domain.ReconstructProduct(
		id,
		row.Name,
		slug,
		row.Description,
		price,
		discountPrice,
		row.ImageKey,
		categoryID,
		row.IsBestSeller,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	return product, nil
}

func productDomainToRow(product *domain.Product) *ProductRow {
	return &ProductRow{
		ID:            product.ID().String(),
		Name:          product.Name(),
		Slug:          product.Slug().String(),
		Description:   product.Description(),
		Price:         product.Price().Int64(),
		DiscountPrice: product.DiscountPrice().Int64(),
		ImageKey:      product.ImageKey(),
		CategoryID:    product.CategoryID().String(),
		IsBestSeller:  product.IsBestSeller(),
		IsActive:      product.IsActive(),
		CreatedAt:     product.CreatedAt(),
		UpdatedAt:     product.UpdatedAt(),
	}
}
