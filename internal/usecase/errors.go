package usecase

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrSlugConflict     = errors.New("slug already exists")

	// ErrUpstreamTimeout はデータベースへのフェッチが期限を超過したことを示します。
	// 呼び出し側はこのエラーを一般的な失敗と区別してリトライや縮退を判断できます。
	ErrUpstreamTimeout = errors.New("upstream fetch timed out")

	// ErrInvalidResponseShape はフェッチしたデータが構造チェックに失敗したことを
	// 示します。該当リソースのみのハードエラーであり、キャッシュには書き込まれません。
	ErrInvalidResponseShape = errors.New("invalid response shape")
)
