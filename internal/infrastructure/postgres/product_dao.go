package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type ProductDAO struct {
	pool PoolInterface
}

type ProductRow struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	Price         int64
	DiscountPrice int64
	ImageKey      string
	CategoryID    string
	IsBestSeller  bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProductDAO(pool PoolInterface) *ProductDAO {
	return &ProductDAO{
		pool: pool,
	}
}

const productColumns = `id, name, slug, description, price, discount_price, image_key, category_id, is_best_seller, is_active, created_at, updated_at`

func scanProductRow(row pgx.Row) (*ProductRow, error) {
	var result ProductRow
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Slug,
		&result.Description,
		&result.Price,
		&result.DiscountPrice,
		&result.ImageKey,
		&result.CategoryID,
		&result.IsBestSeller,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func collectProductRows(rows pgx.Rows) ([]*ProductRow, error) {
	defer rows.Close()

	var results []*ProductRow
	for rows.Next() {
		result, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (dao *ProductDAO) FindByID(ctx context.Context, id string) (*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	result, err := scanProductRow(dao.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return result, nil
}

func (dao *ProductDAO) FindBySlug(ctx context.Context, slug string) (*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE slug = $1 AND is_active = TRUE
	`

	result, err := scanProductRow(dao.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return result, nil
}

func (dao *ProductDAO) FindByCategory(ctx context.Context, categoryID string, offset, limit int) ([]*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := dao.pool.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	return collectProductRows(rows)
}

func (dao *ProductDAO) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM products WHERE category_id = $1 AND is_active = TRUE
	`

	var count int
	err := dao.pool.QueryRow(ctx, query, categoryID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (dao *ProductDAO) FindRelated(ctx context.Context, categoryID, excludeID string, limit int) ([]*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND is_active = TRUE AND ($2 = '' OR id <> $2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := dao.pool.Query(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, err
	}

	return collectProductRows(rows)
}

func (dao *ProductDAO) FindLatest(ctx context.Context, limit int) ([]*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := dao.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	return collectProductRows(rows)
}

func (dao *ProductDAO) FindByIDs(ctx context.Context, ids []string) ([]*ProductRow, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1) AND is_active = TRUE
	`

	rows, err := dao.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}

	return collectProductRows(rows)
}

func (dao *ProductDAO) ListBestSellerIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT id FROM products WHERE is_best_seller = TRUE AND is_active = TRUE
		ORDER BY created_at DESC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (dao *ProductDAO) Insert(ctx context.Context, row *ProductRow) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Slug,
		row.Description,
		row.Price,
		row.DiscountPrice,
		row.ImageKey,
		row.CategoryID,
		row.IsBestSeller,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)

	return err
}

func (dao *ProductDAO) Update(ctx context.Context, row *ProductRow) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, price = $5, discount_price = $6,
			image_key = $7, category_id = $8, is_best_seller = $9, is_active = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Slug,
		row.Description,
		row.Price,
		row.DiscountPrice,
		row.ImageKey,
		row.CategoryID,
		row.IsBestSeller,
		row.IsActive,
		row.UpdatedAt,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (dao *ProductDAO) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM products WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (dao *ProductDAO) SetActiveBulk(ctx context.Context, ids []string, active bool, updatedAt time.Time) error {
	query := `
		UPDATE products SET is_active = $2, updated_at = $3 WHERE id = ANY($1)
	`

	_, err := dao.pool.Exec(ctx, query, ids, active, updatedAt)
	return err
}
