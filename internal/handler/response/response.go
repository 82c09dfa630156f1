package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse はAPI共通のエラーレスポンスです
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func SendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
