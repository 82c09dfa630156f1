package domain

// NormalizePage は1未満のページ番号を1に丸めます。
// 範囲外の入力は拒否せず正規化します。
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizeLimit は1未満のlimitをリソースごとのデフォルト値に丸めます
func NormalizeLimit(limit, defaultLimit int) int {
	if limit < 1 {
		return defaultLimit
	}
	return limit
}

// Pagination はページングされた一覧レスポンスの派生フィールドを保持します
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func NewPagination(page, limit, totalItems int) Pagination {
	page = NormalizePage(page)
	if limit < 1 {
		limit = 1
	}
	totalPages := (totalItems + limit - 1) / limit
	return Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
