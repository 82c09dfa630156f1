package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

type CategoryDAO struct {
	pool PoolInterface
}

type CategoryRow struct {
	ID          string
	Name        string
	Slug        string
	Description string
	ImageKey    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewCategoryDAO(pool PoolInterface) *CategoryDAO {
	return &CategoryDAO{
		pool: pool,
	}
}

const categoryColumns = `id, name, slug, description, image_key, is_active, created_at, updated_at`

func scanCategoryRow(row pgx.Row) (*CategoryRow, error) {
	var result CategoryRow
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Slug,
		&result.Description,
		&result.ImageKey,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *CategoryDAO) FindByID(ctx context.Context, id string) (*CategoryRow, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = $1
	`

	result, err := scanCategoryRow(dao.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return result, nil
}

func (dao *CategoryDAO) FindBySlug(ctx context.Context, slug string) (*CategoryRow, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE slug = $1 AND is_active = TRUE
	`

	result, err := scanCategoryRow(dao.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return result, nil
}

func (dao *CategoryDAO) List(ctx context.Context) ([]*CategoryRow, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name ASC
	`

	rows, err := dao.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*CategoryRow
	for rows.Next() {
		result, err := scanCategoryRow(rows)
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

func (dao *CategoryDAO) Insert(ctx context.Context, row *CategoryRow) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Slug,
		row.Description,
		row.ImageKey,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)

	return err
}

func (dao *CategoryDAO) Update(ctx context.Context, row *CategoryRow) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, description = $4, image_key = $5, is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := dao.pool.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Slug,
		row.Description,
		row.ImageKey,
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

func (dao *CategoryDAO) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM categories WHERE id = $1
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
