//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_home_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/usecase"
)

type HomeUseCaseInterface interface {
	GetHome(ctx context.Context, limit int) (*usecase.HomeResponse, error)
}

func HomeHandler(uc HomeUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		resp, err := uc.GetHome(ctx, parseIntQuery(c, "limit"))
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
