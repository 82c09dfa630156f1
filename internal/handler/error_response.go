package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/domain"
	"github.com/na2na-p/storefront/internal/handler/response"
	"github.com/na2na-p/storefront/internal/usecase"
)

type ErrorResponse = response.ErrorResponse

func SendError(c echo.Context, statusCode int, message string) error {
	return response.SendError(c, statusCode, message)
}

// SendUseCaseError はユースケースのエラーをHTTPステータスへ対応付けます
func SendUseCaseError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlug):
		return SendError(c, http.StatusBadRequest, "スラッグの形式が不正です")
	case errors.Is(err, usecase.ErrProductNotFound):
		return SendError(c, http.StatusNotFound, "商品が見つかりません")
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return SendError(c, http.StatusNotFound, "カテゴリが見つかりません")
	case errors.Is(err, usecase.ErrSlugConflict):
		return SendError(c, http.StatusConflict, "スラッグが既に使用されています")
	case errors.Is(err, usecase.ErrUpstreamTimeout):
		return SendError(c, http.StatusServiceUnavailable, "データソースへの問い合わせがタイムアウトしました")
	case errors.Is(err, usecase.ErrInvalidResponseShape):
		return SendError(c, http.StatusInternalServerError, "データの形式が不正です")
	case errors.Is(err, domain.ErrEmptyName):
		return SendError(c, http.StatusBadRequest, "名前は必須です")
	case errors.Is(err, domain.ErrInvalidPrice):
		return SendError(c, http.StatusBadRequest, "価格の指定が不正です")
	default:
		slog.Error("ハンドラで未分類のエラーが発生しました", "path", c.Request().URL.Path, "error", err)
		return SendError(c, http.StatusInternalServerError, "サーバー内部エラーが発生しました")
	}
}
