//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_category_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/usecase"
)

type CategoryUseCaseInterface interface {
	ListCategories(ctx context.Context) (*usecase.CategoriesResponse, error)
	GetCategoryDetail(ctx context.Context, slug string, page, limit int) (*usecase.CategoryDetailResponse, error)
}

func ListCategoriesHandler(uc CategoryUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		resp, err := uc.ListCategories(ctx)
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}

func CategoryDetailHandler(uc CategoryUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		resp, err := uc.GetCategoryDetail(ctx,
			c.Param("slug"),
			parseIntQuery(c, "page"),
			parseIntQuery(c, "limit"),
		)
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
