package usecase

import (
	"github.com/na2na-p/storefront/internal/domain"
)

// Response Sources
// レスポンスの出自を示すフラグ。キャッシュ動作のテストで検証されるため契約の一部です。
const (
	SourceCache = "cache"
	SourceAPI   = "api"
)

// Default Page Sizes
const (
	DefaultHomeLimit     = 8
	DefaultCategoryLimit = 12
	DefaultRelatedLimit  = 4
)

type ProductView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description,omitempty"`
	Price           int64  `json:"price"`
	DiscountPrice   int64  `json:"discountPrice,omitempty"`
	DiscountPercent int    `json:"discountPercent"`
	ImageURL        string `json:"imageUrl,omitempty"`
	CategoryID      string `json:"categoryId"`
	IsBestSeller    bool   `json:"isBestSeller"`
}

type CategoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type HomeResponse struct {
	Success     bool           `json:"success"`
	Source      string         `json:"source"`
	Categories  []CategoryView `json:"categories"`
	Products    []ProductView  `json:"products"`
	BestSellers []ProductView  `json:"bestSellers"`
}

type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Source     string         `json:"source"`
	Categories []CategoryView `json:"categories"`
}

type CategoryDetailResponse struct {
	Success    bool              `json:"success"`
	Source     string            `json:"source"`
	Category   CategoryView      `json:"category"`
	Products   []ProductView     `json:"products"`
	Pagination domain.Pagination `json:"pagination"`
}

type ProductDetailResponse struct {
	Success  bool          `json:"success"`
	Source   string        `json:"source"`
	Product  ProductView   `json:"product"`
	Category *CategoryView `json:"category,omitempty"`
}

type RelatedProductsResponse struct {
	Success  bool          `json:"success"`
	Source   string        `json:"source"`
	Products []ProductView `json:"products"`
}

// homeProductsFacet は home:products:result:<limit> に格納される部分キャッシュです
type homeProductsFacet struct {
	Products []ProductView `json:"products"`
}

func newProductView(product *domain.Product, assets AssetURLResolver) ProductView {
	view := ProductView{
		ID:              product.ID().String(),
		Name:            product.Name(),
		Slug:            product.Slug().String(),
		Description:     product.Description(),
		Price:           product.Price().Int64(),
		DiscountPrice:   product.DiscountPrice().Int64(),
		DiscountPercent: product.DiscountPercent(),
		CategoryID:      product.CategoryID().String(),
		IsBestSeller:    product.IsBestSeller(),
	}
	if product.ImageKey() != "" {
		view.ImageURL = assets.ImageURL(product.ImageKey())
	}
	return view
}

func newProductViews(products []*domain.Product, assets AssetURLResolver) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, assets))
	}
	return views
}

func newCategoryView(category *domain.Category, assets AssetURLResolver) CategoryView {
	view := CategoryView{
		ID:          category.ID().String(),
		Name:        category.Name(),
		Slug:        category.Slug().String(),
		Description: category.Description(),
	}
	if category.ImageKey() != "" {
		view.ImageURL = assets.ImageURL(category.ImageKey())
	}
	return view
}

func newCategoryViews(categories []*domain.Category, assets AssetURLResolver) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, newCategoryView(c, assets))
	}
	return views
}
