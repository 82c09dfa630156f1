//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_admin_product_handler.go -package=handler
package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/usecase"
)

type ProductAdminUseCaseInterface interface {
	CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SetActiveBulk(ctx context.Context, ids []uuid.UUID, active bool) error
	AttachProductImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.Product, error)
}

type CreateProductRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	DiscountPrice int64  `json:"discountPrice"`
	CategoryID    string `json:"categoryId"`
	IsBestSeller  bool   `json:"isBestSeller"`
}

type UpdateProductRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *int64  `json:"price"`
	DiscountPrice *int64  `json:"discountPrice"`
	IsBestSeller  *bool   `json:"isBestSeller"`
	IsActive      *bool   `json:"isActive"`
}

type BulkActiveRequest struct {
	IDs    []string `json:"ids"`
	Active bool     `json:"active"`
}

type AdminProductPayload struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	DiscountPrice int64     `json:"discountPrice"`
	ImageKey      string    `json:"imageKey,omitempty"`
	CategoryID    string    `json:"categoryId"`
	IsBestSeller  bool      `json:"isBestSeller"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AdminProductResponse struct {
	Success bool                `json:"success"`
	Product AdminProductPayload `json:"product"`
}

func newAdminProductPayload(product *domain.Product) AdminProductPayload {
	return AdminProductPayload{
		ID:            product.ID().String(),
		Name:          product.Name(),
		Slug:          product.Slug().String(),
		Description:   product.Description(),
		Price:         product.Price().Int64(),
		DiscountPrice: product.DiscountPrice().Int64(),
		ImageKey:      product.ImageKey(),
		CategoryID:    product.CategoryID().String(),
		IsBestSeller:  product.IsBestSeller(),
		IsActive:      product.IsActive(),
		CreatedAt:     product.CreatedAt(),
		UpdatedAt:     product.UpdatedAt(),
	}
}

func CreateProductHandler(uc ProductAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
		}

		product, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Name:          req.Name,
			Slug:          req.Slug,
			Description:   req.Description,
			Price:         req.Price,
			DiscountPrice: req.DiscountPrice,
			CategoryID:    req.CategoryID,
			IsBestSeller:  req.IsBestSeller,
		})
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusCreated, AdminProductResponse{
			Success: true,
			Product: newAdminProductPayload(product),
		})
	}
}

func UpdateProductHandler(uc ProductAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "idの形式が不正です")
		}

		var req UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
		}

		product, err := uc.UpdateProduct(ctx, id, usecase.UpdateProductInput{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			DiscountPrice: req.DiscountPrice,
			IsBestSeller:  req.IsBestSeller,
			IsActive:      req.IsActive,
		})
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, AdminProductResponse{
			Success: true,
			Product: newAdminProductPayload(product),
		})
	}
}

func DeleteProductHandler(uc ProductAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "idの形式が不正です")
		}

		if err := uc.DeleteProduct(ctx, id); err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}
}

func BulkActiveProductsHandler(uc ProductAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req BulkActiveRequest
		if err := c.Bind(&req); err != nil {
			return SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
		}
		if len(req.IDs) == 0 {
			return SendError(c, http.StatusBadRequest, "idsは必須です")
		}

		ids := make([]uuid.UUID, 0, len(req.IDs))
		for _, raw := range req.IDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return SendError(c, http.StatusBadRequest, "idsに不正なIDが含まれています")
			}
			ids = append(ids, id)
		}

		if err := uc.SetActiveBulk(ctx, ids, req.Active); err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]any{
			"success": true,
			"count":   len(ids),
		})
	}
}

func UploadProductImageHandler(uc ProductAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "idの形式が不正です")
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return SendError(c, http.StatusBadRequest, "imageフィールドは必須です")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return SendError(c, http.StatusBadRequest, "アップロードされたファイルを開けませんでした")
		}
		defer func() {
			_ = file.Close()
		}()

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		product, err := uc.AttachProductImage(ctx, id, fileHeader.Filename, contentType, file)
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, AdminProductResponse{
			Success: true,
			Product: newAdminProductPayload(product),
		})
	}
}
