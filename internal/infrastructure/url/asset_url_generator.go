package url

import (
	"strings"

	"github.com/na2na-p/storefront/internal/usecase"
)

var _ usecase.AssetURLResolver = (*AssetURLGenerator)(nil)

// AssetURLGenerator はオブジェクトキーから配信用URLを組み立てます。
// 署名付きURLではなく固定のベースURLを使うため、キャッシュされた
// レスポンスに埋め込まれても期限切れになりません。
type AssetURLGenerator struct {
	baseURL string
}

func NewAssetURLGenerator(baseURL string) *AssetURLGenerator {
	return &AssetURLGenerator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (g *AssetURLGenerator) ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return g.baseURL + "/" + strings.TrimPrefix(key, "/")
}
