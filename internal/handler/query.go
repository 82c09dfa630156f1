package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseIntQuery はクエリパラメータを整数として解釈します。
// 欠落や数値以外の値は呼び出し側のデフォルトに委ねるため0を返します。
func parseIntQuery(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
