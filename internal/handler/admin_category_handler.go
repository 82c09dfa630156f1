//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_admin_category_handler.go -package=handler
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

type CategoryAdminUseCaseInterface interface {
	CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	AttachCategoryImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.Category, error)
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type AdminCategoryPayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageKey    string    `json:"imageKey,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AdminCategoryResponse struct {
	Success  bool                 `json:"success"`
	Category AdminCategoryPayload `json:"category"`
}

func newAdminCategoryPayload(category *domain.Category) AdminCategoryPayload {
	return AdminCategoryPayload{
		ID:          category.ID().String(),
		Name:        category.Name(),
		Slug:        category.Slug().String(),
		Description: category.Description(),
		ImageKey:    category.ImageKey(),
		IsActive:    category.IsActive(),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
}

func CreateCategoryHandler(uc CategoryAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req CreateCategoryRequest
		if err := c.Bind(&req); err != nil {
			return SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
		}

		category, err := uc.CreateCategory(ctx, usecase.CreateCategoryInput{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
		})
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusCreated, AdminCategoryResponse{
			Success:  true,
			Category: newAdminCategoryPayload(category),
		})
	}
}

func UpdateCategoryHandler(uc CategoryAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "idの形式が不正です")
		}

		var req UpdateCategoryRequest
		if err := c.Bind(&req); err != nil {
			return SendError(c, http.StatusBadRequest, "リクエストボディの解析に失敗しました")
		}

		category, err := uc.UpdateCategory(ctx, id, usecase.UpdateCategoryInput{
			Name:        req.Name,
			Description: req.Description,
			IsActive:    req.IsActive,
		})
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, AdminCategoryResponse{
			Success:  true,
			Category: newAdminCategoryPayload(category),
		})
	}
}

func DeleteCategoryHandler(uc CategoryAdminUseCaseInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return SendError(c, http.StatusBadRequest, "idの形式が不正です")
		}

		if err := uc.DeleteCategory(ctx, id); err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}
}

func UploadCategoryImageHandler(uc CategoryAdminUseCaseInterface) echo.HandlerFunc {
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

		category, err := uc.AttachCategoryImage(ctx, id, fileHeader.Filename, contentType, file)
		if err != nil {
			return SendUseCaseError(c, err)
		}

		return c.JSON(http.StatusOK, AdminCategoryResponse{
			Success:  true,
			Category: newAdminCategoryPayload(category),
		})
	}
}
