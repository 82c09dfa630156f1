package s3

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ProductImageKey は商品画像のS3オブジェクトキーを生成します。
// 形式: products/{product_id}/{filename}
// 例: products/0199cafe-.../main.jpg
//
// ファイル名はキーとして安全な文字に正規化されます。

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func sanitizeFilename(filename string) string {
	base := path.Base(filename)
	base = strings.ReplaceAll(base, "..", "")
	sanitized := unsafeKeyChars.ReplaceAllString(base, "-")
	sanitized = strings.Trim(sanitized, "-.")
	if sanitized == "" {
		return "image"
	}
	return sanitized
}

func ProductImageKey(productID, filename string) string {
	return fmt.Sprintf("products/%s/%s", productID, sanitizeFilename(filename))
}

func CategoryImageKey(categoryID, filename string) string {
	return fmt.Sprintf("categories/%s/%s", categoryID, sanitizeFilename(filename))
}
