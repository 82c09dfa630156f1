package url

import "testing"

// TestAssetURLGenerator_ImageURL はImageURLのテーブルドリブンテスト
func TestAssetURLGenerator_ImageURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		key     string
		want    string
	}{
		{
			name:    "正常系: 通常のキー",
			baseURL: "https://assets.example.com",
			key:     "products/1111/main.jpg",
			want:    "https://assets.example.com/products/1111/main.jpg",
		},
		{
			name:    "正常系: 末尾スラッシュ付きベースURL",
			baseURL: "https://assets.example.com/",
			key:     "products/1111/main.jpg",
			want:    "https://assets.example.com/products/1111/main.jpg",
		},
		{
			name:    "正常系: 先頭スラッシュ付きキー",
			baseURL: "https://assets.example.com",
			key:     "/products/1111/main.jpg",
			want:    "https://assets.example.com/products/1111/main.jpg",
		},
		{
			name:    "正常系: 空のキーは空文字",
			baseURL: "https://assets.example.com",
			key:     "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewAssetURLGenerator(tt.baseURL)
			if got := g.ImageURL(tt.key); got != tt.want {
				t.Errorf("ImageURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
