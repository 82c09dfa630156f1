//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_product_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/usecase"
)

type ProductUseCaseInterface interface {
	GetProductDetail(ctx context.Context, slug string) (*usecase.ProductDetailResponse, error)
	GetRelatedProducts(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) (*usecase.RelatedProductsResponse, error)
}

func ProductDetailHandler(uc ProductUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		resp, err := uc.GetProductDetail(ctx, c.Param("slug"))
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

func RelatedProductsHandler(uc ProductUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		categoryID, err := uuid.Parse(c.QueryParam("categoryId"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "categoryIdの形式が不正です")
		}

		// excludeIdは任意。欠落や不正な値は除外なしとして扱う。
		excludeID := uuid.Nil
		if raw := c.QueryParam("excludeId"); raw != "" {
			if parsed, err := uuid.Parse(raw); err == nil {
				excludeID = parsed
			}
		}

		resp, err := uc.GetRelatedProducts(ctx, categoryID, excludeID, parseIntQuery(c, "limit"))
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
