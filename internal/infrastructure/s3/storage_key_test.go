package s3

import "testing"

// TestProductImageKey はProductImageKeyのテーブルドリブンテスト
func TestProductImageKey(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		filename  string
		want      string
	}{
		{
			name:      "正常系: 通常のファイル名",
			productID: "11111111-1111-1111-1111-111111111111",
			filename:  "main.jpg",
			want:      "products/11111111-1111-1111-1111-111111111111/main.jpg",
		},
		{
			name:      "正常系: パス要素は取り除かれる",
			productID: "11111111-1111-1111-1111-111111111111",
			filename:  "../../etc/passwd",
			want:      "products/11111111-1111-1111-1111-111111111111/passwd",
		},
		{
			name:      "正常系: 安全でない文字は置換される",
			productID: "11111111-1111-1111-1111-111111111111",
			filename:  "新鮮ミルク photo.jpg",
			want:      "products/11111111-1111-1111-1111-111111111111/photo.jpg",
		},
		{
			name:      "正常系: 空のファイル名はフォールバック",
			productID: "11111111-1111-1111-1111-111111111111",
			filename:  "",
			want:      "products/11111111-1111-1111-1111-111111111111/image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductImageKey(tt.productID, tt.filename); got != tt.want {
				t.Errorf("ProductImageKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCategoryImageKey はCategoryImageKeyのテスト
func TestCategoryImageKey(t *testing.T) {
	got := CategoryImageKey("22222222-2222-2222-2222-222222222222", "banner.png")
	want := "categories/22222222-2222-2222-2222-222222222222/banner.png"
	if got != want {
		t.Errorf("CategoryImageKey() = %v, want %v", got, want)
	}
}
