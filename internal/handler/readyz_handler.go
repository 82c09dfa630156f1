//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_readyz_handler.go -package=handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/na2na-p/storefront/internal/usecase"
)

type ReadinessUseCaseInterface interface {
	ExecuteDetails(ctx context.Context) ([]usecase.HealthCheckResult, error)
}

type readinessDetail struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status  string            `json:"status"`
	Details []readinessDetail `json:"details"`
}

// ReadyzHandler はバックエンド全体の疎通状況を返します。
// キャッシュ縮退中でも個別のdetailで検知できるよう、常に全チェッカーの結果を含めます。
type ReadyzHandler struct {
	uc ReadinessUseCaseInterface
}

func NewReadyzHandler(uc ReadinessUseCaseInterface) *ReadyzHandler {
	return &ReadyzHandler{
		uc: uc,
	}
}

func (h *ReadyzHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.uc.ExecuteDetails(ctx)
	status := "ready"
	statusCode := http.StatusOK
	if err != nil {
		status = "not ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, readinessResponse{
		Status:  status,
		Details: toReadinessDetails(results),
	})
}

func toReadinessDetails(results []usecase.HealthCheckResult) []readinessDetail {
	details := make([]readinessDetail, 0, len(results))
	for _, r := range results {
		detail := readinessDetail{
			Name:    r.Name,
			Healthy: r.Healthy,
		}
		if r.Error != nil {
			detail.Error = r.Error.Error()
		}
		details = append(details, detail)
	}
	return details
}
