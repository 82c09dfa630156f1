//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/storefront/internal/domain"
)

// EventSink は無効化イベントの発行先です。配信保証はありません。
type EventSink interface {
	Publish(ctx context.Context, channel string, event domain.InvalidationEvent) error
}

// PageRevalidator はレンダリング済みページキャッシュの再検証を行います
type PageRevalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// CacheWarmer は再検証後のパスを事前に再取得してキャッシュを温めます
type CacheWarmer interface {
	Warm(ctx context.Context, path string) error
}

// AssetURLResolver はストレージキーから配信用URLを決定的に導出します
type AssetURLResolver interface {
	ImageURL(key string) string
}

// ImageStorage は商品・カテゴリ画像のオブジェクトストレージです
type ImageStorage interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader) error
	DeleteObject(ctx context.Context, key string) error
}

// StorageKeyGenerator は画像オブジェクトのストレージキーを生成します
type StorageKeyGenerator interface {
	ProductImageKey(productID, filename string) string
	CategoryImageKey(categoryID, filename string) string
}
