package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/na2na-p/storefront/internal/domain"
)

// defaultFetchTimeout は上流フェッチの既定の期限です。
// キャッシュストアの接続タイムアウトとは独立しています。
const defaultFetchTimeout = 10 * time.Second

func fetchContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// wrapFetchError は上流フェッチのエラーを型付きエラーへ変換します。
// 期限超過は一般的な失敗と区別してErrUpstreamTimeoutになります。
func wrapFetchError(err error, message string, onNotFound error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrUpstreamTimeout
	case onNotFound != nil && errors.Is(err, domain.ErrNotFound):
		return onNotFound
	case errors.Is(err, domain.ErrInvalidRecord):
		return ErrInvalidResponseShape
	}
	return fmt.Errorf("%s: %w", message, err)
}
