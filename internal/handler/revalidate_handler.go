package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/usecase"
)

type RevalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Path        string `json:"path"`
}

// RevalidateHandler は共有シークレットで保護されたページ再検証エンドポイントです。
// フロントエンドのレンダラやCMSのWebhookから呼び出されます。
func RevalidateHandler(revalidator usecase.PageRevalidator, secret string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		provided := c.QueryParam("secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return SendError(c, http.StatusUnauthorized, "シークレットが一致しません")
		}

		path := c.QueryParam("path")
		if path == "" {
			return SendError(c, http.StatusBadRequest, "pathは必須です")
		}

		if err := revalidator.Revalidate(ctx, path); err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, RevalidateResponse{
			Revalidated: true,
			Path:        path,
		})
	}
}
